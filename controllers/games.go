package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yashwanthkasi9182/PlayMate/models"
	"github.com/yashwanthkasi9182/PlayMate/services/games"
)

// @Summary Validate a game
// @Description Asks the AI whether the game exists and returns its team rules. Always answers 200; failures come back with isValid=false.
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.ValidateGameRequest true "Game to validate"
// @Success 200 {object} models.GameInfo
// @Router /validate-game [post]
func ValidateGame(validator GameValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ValidateGameRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusOK, models.InvalidGame(msgInvalidBody))
			return
		}
		c.JSON(http.StatusOK, validator.Validate(c.Request.Context(), req.GameName))
	}
}

// @Summary Generate teams and matches
// @Description Splits the players into teams and schedules matches between them
// @Tags games
// @Accept json
// @Produce json
// @Param request body models.GenerateTeamsRequest true "Players and format"
// @Success 200 {object} models.GenerateTeamsResponse
// @Failure 400 {object} models.GenerateTeamsResponse
// @Failure 500 {object} models.GenerateTeamsResponse
// @Router /generate-teams [post]
func GenerateTeams(generator TeamGenerator) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.GenerateTeamsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.FailedGeneration(msgInvalidBody))
			return
		}

		resp, err := generator.Generate(c.Request.Context(), req)
		if err != nil {
			c.Error(err)
			status := http.StatusInternalServerError
			if games.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// @Summary Ask a rules question
// @Description Answers a question about the game, taking the previous turns into account
// @Tags chat
// @Accept json
// @Produce json
// @Param request body models.ChatRequest true "Question and history"
// @Success 200 {object} models.ChatResponse
// @Failure 400 {object} models.ChatResponse
// @Failure 500 {object} models.ChatResponse
// @Router /chat [post]
func Chat(responder ChatResponder) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.ChatRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ChatResponse{Success: false, Error: msgInvalidBody})
			return
		}

		reply, err := responder.Respond(c.Request.Context(), req)
		if err != nil {
			c.Error(err)
			status := http.StatusInternalServerError
			if games.IsValidationError(err) {
				status = http.StatusBadRequest
			}
			c.JSON(status, models.ChatResponse{Success: false, Error: games.PublicMessage(err, games.MsgChatFailed)})
			return
		}
		c.JSON(http.StatusOK, models.ChatResponse{Success: true, Response: reply})
	}
}
