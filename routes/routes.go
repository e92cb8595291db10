package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yashwanthkasi9182/PlayMate/controllers"
	"github.com/yashwanthkasi9182/PlayMate/services/metrics"
	utils "github.com/yashwanthkasi9182/PlayMate/utils"
	"go.uber.org/zap"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Deps holds what the handlers need. Share may be nil when no database is
// configured; the share routes then answer 503.
type Deps struct {
	Validator controllers.GameValidator
	Generator controllers.TeamGenerator
	Responder controllers.ChatResponder
	Sessions  controllers.ChatHistoryStore
	Share     controllers.ShareStore
	Metrics   *metrics.Collector
	Logger    *zap.Logger
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, deps Deps) {
	// utils global
	router.Use(utils.ErrorHandler(deps.Logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	// The original frontend calls everything under /api
	for _, prefix := range []string{"/", "/api"} {
		api := router.Group(prefix)

		api.GET("/ping", controllers.Ping)

		api.POST("/validate-game", controllers.ValidateGame(deps.Validator))
		api.POST("/generate-teams", controllers.GenerateTeams(deps.Generator))
		api.POST("/chat", controllers.Chat(deps.Responder))

		session := api.Group("/chat/session")
		{
			session.GET("", controllers.GetChatSession(deps.Sessions))
			session.POST("", controllers.PostChatSession(deps.Sessions, deps.Responder))
			session.DELETE("", controllers.DeleteChatSession(deps.Sessions))
		}

		api.POST("/share", controllers.CreateShare(deps.Share))
		api.GET("/share/:token", controllers.GetShare(deps.Share))
	}
}
