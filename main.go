package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/yashwanthkasi9182/PlayMate/config"
	llm_constants "github.com/yashwanthkasi9182/PlayMate/constants/llm"
	"github.com/yashwanthkasi9182/PlayMate/controllers"
	_ "github.com/yashwanthkasi9182/PlayMate/docs"
	"github.com/yashwanthkasi9182/PlayMate/middleware"
	"github.com/yashwanthkasi9182/PlayMate/routes"
	"github.com/yashwanthkasi9182/PlayMate/services/games"
	"github.com/yashwanthkasi9182/PlayMate/services/llm"
	"github.com/yashwanthkasi9182/PlayMate/services/memory"
	"github.com/yashwanthkasi9182/PlayMate/services/metrics"
	"github.com/yashwanthkasi9182/PlayMate/services/redis"
	"github.com/yashwanthkasi9182/PlayMate/services/retention"
	"github.com/yashwanthkasi9182/PlayMate/services/share"
	"github.com/yashwanthkasi9182/PlayMate/services/socket_io"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const sessionTTL = 24 * time.Hour

// @title PlayMate API
// @version 1.0
// @description Gin-Gonic server for the PlayMate team generator
// @BasePath /
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log, err := config.NewLogger(cfg.LogLevel, cfg.Prod)
	if err != nil {
		return err
	}
	defer log.Sync()

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}
	log.Info("Setting up server...", zap.String("provider", cfg.LLM.Provider))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	collaborator, err := newCollaborator(ctx, cfg.LLM, log)
	if err != nil {
		return err
	}

	collector := metrics.NewCollector(nil)
	gamesCfg := games.Config{
		Collaborator: collaborator,
		Models:       llm_constants.ModelsFor(cfg.LLM.Provider),
		Observer:     collector,
		Logger:       log,
	}

	var sessions controllers.ChatHistoryStore
	var tasks []retention.Task
	if cfg.RedisURL != "" {
		redisClient, err := config.ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("error connecting to Redis: %w", err)
		}
		defer redis.CloseRedis(redisClient)
		log.Info("Connection to Redis successful")
		sessions = redisClient
		gamesCfg.Cache = redisClient
	} else {
		store := memory.NewChatStore(sessionTTL)
		sessions = store
		tasks = append(tasks, retention.Task{
			Name:  "chat_sessions",
			Prune: func(context.Context) (int64, error) { return int64(store.Prune()), nil },
		})
		log.Warn("REDIS_URL not set, chat sessions are kept in memory and games are not cached")
	}

	var shares controllers.ShareStore
	if cfg.Postgres.Enabled() {
		gormDB, err := config.ConnectGORM(cfg.Postgres)
		if err != nil {
			return fmt.Errorf("error connecting to PostgreSQL: %w", err)
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return fmt.Errorf("error reading GORM PostgreSQL instance: %w", err)
		}
		defer sqlDB.Close()
		log.Info("GORM Connected")

		if cfg.Postgres.Migrate {
			if err := config.MigrateDatabase(gormDB); err != nil {
				log.Warn("Database migration failed", zap.Error(err))
			} else {
				log.Info("Database migrated successfully")
			}
		}

		svc := share.NewService(gormDB, []byte(cfg.Key), cfg.ShareTTL, log)
		shares = svc
		tasks = append(tasks, retention.Task{Name: "shared_results", Prune: svc.PruneExpired})
	} else {
		log.Warn("PostgreSQL not configured, sharing is disabled")
	}

	responder := games.NewResponder(gamesCfg)

	r := gin.New()
	middleware.SetUpMiddleware(r, middleware.Options{
		Key:         []byte(cfg.Key),
		Secure:      cfg.Prod,
		CORSOrigins: cfg.CORSOrigins,
		Logger:      log,
		Metrics:     collector,
	})
	routes.SetupRoutes(r, routes.Deps{
		Validator: games.NewValidator(gamesCfg),
		Generator: games.NewGenerator(gamesCfg),
		Responder: responder,
		Sessions:  sessions,
		Share:     shares,
		Metrics:   collector,
		Logger:    log,
	})

	sio := &socket_io.MySocketServer{}
	sio.Start(r, responder, socket_io.Options{AllowOrigin: firstOrigin(cfg.CORSOrigins), Debug: !cfg.Prod}, log)
	defer sio.Close()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}
	scheduler := retention.NewScheduler(cfg.RetentionSchedule, log, tasks...)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("Server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return scheduler.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newCollaborator(ctx context.Context, cfg config.LLMConfig, log *zap.Logger) (llm.Collaborator, error) {
	switch cfg.Provider {
	case llm_constants.ProviderGemini:
		return llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}, log)
	default:
		return llm.NewGroqClient(llm.GroqConfig{
			APIKey:     cfg.GroqAPIKey,
			BaseURL:    cfg.GroqBaseURL,
			Timeout:    cfg.Timeout,
			MaxRetries: cfg.MaxRetries,
		}, log), nil
	}
}

// The socket.io handshake takes a single origin
func firstOrigin(origins []string) string {
	if len(origins) == 0 {
		return "*"
	}
	return origins[0]
}
