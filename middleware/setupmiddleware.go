package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/yashwanthkasi9182/PlayMate/services/metrics"
	"go.uber.org/zap"
)

// SessionName is the cookie that carries the chat session
const SessionName = "playmate_session"

// Options configures the shared middleware chain
type Options struct {
	// Key signs the session cookie
	Key         []byte
	Secure      bool
	CORSOrigins []string
	Logger      *zap.Logger
	Metrics     *metrics.Collector
}

// SetUpMiddleware installs request ids, access logs, metrics, sessions and
// CORS on the router, in that order.
func SetUpMiddleware(r *gin.Engine, opts Options) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r.Use(RequestID())
	r.Use(Logger(log))
	r.Use(Metrics(opts.Metrics))

	store := cookie.NewStore(opts.Key)
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((24 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(SessionName, store))

	r.Use(cors.New(corsConfig(opts.CORSOrigins)))
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
