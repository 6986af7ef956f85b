package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glint-backend/config"
	_ "glint-backend/docs" // Important for Swagger
	v1 "glint-backend/internal/delivery/http/v1"
	"glint-backend/internal/notify"
	"glint-backend/internal/repository/kv"
	"glint-backend/internal/seed"
	"glint-backend/internal/usecase"
	"glint-backend/pkg/auth"
	"glint-backend/pkg/database"
	"glint-backend/pkg/logger"
	pkgredis "glint-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Glint Data Engine API
// @version         1.0
// @description     Social/marketplace data engine matching creators and hirers.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting glint backend", "port", cfg.Port, "storage", cfg.StorageBackend)

	// 3. Setup Storage substrate
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer bootCancel()

	var store kv.Store
	switch cfg.StorageBackend {
	case "redis":
		if err := pkgredis.Initialize(pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Error("Failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer pkgredis.Close()
		store = kv.NewRedisStore(pkgredis.Client())
	case "postgres":
		pool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		store, err = kv.NewPostgresStore(bootCtx, pool)
		if err != nil {
			logger.Log.Error("Failed to prepare kv table", "error", err)
			os.Exit(1)
		}
	default:
		store = kv.NewMemoryStore()
	}

	// Optional redis client for counter broadcasts even when storage is
	// elsewhere.
	if cfg.StorageBackend != "redis" && cfg.RedisURL != "" {
		if err := pkgredis.Initialize(pkgredis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Counter broadcasts disabled", "error", err)
		} else {
			defer pkgredis.Close()
		}
	}

	// 4. Seed demo data
	if cfg.SeedData {
		if err := seed.Initialize(bootCtx, store); err != nil {
			logger.Log.Error("Failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	// 5. Setup Repositories
	userRepo := kv.NewUserRepository(store)
	postRepo := kv.NewPostRepository(store)
	commentRepo := kv.NewCommentRepository(store)
	jobRepo := kv.NewJobRepository(store)
	hireRepo := kv.NewHireRepository(store)
	chatRepo := kv.NewChatRepository(store)
	msgRepo := kv.NewMessageRepository(store)
	notifRepo := kv.NewNotificationRepository(store)

	// 6. Setup UseCases
	validate := validator.New()
	sessions := auth.NewSessionManager(cfg.SessionSecret, cfg.SessionDuration)

	notifier := usecase.NewNotifier(notifRepo, nil)
	authUC := usecase.NewAuthUsecase(userRepo, sessions)
	userUC := usecase.NewUserUsecase(userRepo, notifier, validate)
	postUC := usecase.NewPostUsecase(postRepo, commentRepo, userRepo, notifier)
	jobUC := usecase.NewJobUsecase(jobRepo, userRepo, notifier)
	hireUC := usecase.NewHireUsecase(hireRepo, userRepo, notifier)
	notifUC := usecase.NewNotificationUsecase(notifRepo, userRepo, notifier)
	chatUC := usecase.NewChatUsecase(chatRepo, msgRepo, notifier)

	// 7. Counter broadcaster (publish-on-mutation over redis pub/sub)
	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	broadcaster := notify.NewBroadcaster(notifUC, pkgredis.Client())
	notifier.SetPublisher(broadcaster)
	go broadcaster.Run(runCtx)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:   authUC,
		UserUC:   userUC,
		PostUC:   postUC,
		JobUC:    jobUC,
		HireUC:   hireUC,
		NotifUC:  notifUC,
		ChatUC:   chatUC,
		Sessions: sessions,
		Config:   cfg,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	runCancel()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
