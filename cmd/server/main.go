package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Chetan55567/portfolio-api/adapters/event"
	httpAdapter "github.com/Chetan55567/portfolio-api/adapters/http"
	"github.com/Chetan55567/portfolio-api/adapters/llm"
	"github.com/Chetan55567/portfolio-api/adapters/media_storage"
	"github.com/Chetan55567/portfolio-api/adapters/persistence"
	"github.com/Chetan55567/portfolio-api/adapters/textextract"
	"github.com/Chetan55567/portfolio-api/internal/application/service"
	authUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/auth"
	mediaUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/media"
	profileUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/profile"
	resumeUC "github.com/Chetan55567/portfolio-api/internal/application/usecase/resume"
	"github.com/Chetan55567/portfolio-api/internal/config"
	"github.com/Chetan55567/portfolio-api/pkg/auth"
	"github.com/Chetan55567/portfolio-api/pkg/logger"
	"github.com/Chetan55567/portfolio-api/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	// Tracing (optional)
	tracerProvider, err := tracing.NewTracerProvider(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}
	if tracerProvider != nil {
		defer tracerProvider.Shutdown(context.Background())
	}

	// Profile store (malformed data is fatal at startup, not at request time)
	profileStore, err := persistence.OpenProfileStore(cfg.App.DataDir, appLogger)
	if err != nil {
		appLogger.Fatal("cannot open profile store", err)
	}

	// Session revocation (optional, needs Redis)
	var revoker service.SessionRevoker = persistence.NewNoopRevoker()
	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(cfg)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		revoker = persistence.NewRedisSessionStore(redisClient)
		appLogger.Info("session revocation enabled via Redis")
	}

	// Content events (optional, needs Kafka)
	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Upload storage
	var uploader service.Uploader
	switch cfg.Storage.Driver {
	case "cloudinary":
		uploader, err = media_storage.NewCloudinaryAdapter(cfg, appLogger)
	default:
		uploader, err = media_storage.NewLocalAdapter(cfg.App.DataDir)
	}
	if err != nil {
		appLogger.Fatal("cannot initialize uploader", err)
	}

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	credentialValidator := authUC.NewCredentialValidator(cfg)
	textExtractor := textextract.NewExtractor()
	aiExtractor := llm.NewExtractor(cfg, appLogger)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(credentialValidator, jwtSvc, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(jwtSvc, revoker, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileStore, kafkaClient, appLogger)
	photoUseCase := mediaUC.NewPhotoUseCase(profileStore, uploader, kafkaClient, appLogger)
	resumeUseCase := resumeUC.NewResumeUseCase(profileStore, uploader, textExtractor, aiExtractor, kafkaClient, cfg.AI.Timeout, appLogger)

	// HTTP Handlers
	secureCookies := cfg.App.Env == "production"
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, logoutUseCase, secureCookies, appLogger)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, appLogger)
	photoHandler := httpAdapter.NewPhotoHandler(photoUseCase, appLogger)
	resumeHandler := httpAdapter.NewResumeHandler(resumeUseCase, appLogger)
	uploadsHandler := httpAdapter.NewUploadsHandler(uploader, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, revoker, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Setup Gin router
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), errorMiddleware)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "UP"}) })

		api.POST("/auth", authHandler.Auth)

		api.GET("/profile", profileHandler.GetProfile)
		api.PUT("/profile", authMiddleware, profileHandler.UpdateProfile)

		api.POST("/photo", authMiddleware, photoHandler.UploadPhoto)
		api.DELETE("/photo", authMiddleware, photoHandler.DeletePhoto)

		api.POST("/resume", authMiddleware, resumeHandler.UploadResume)
		api.GET("/resume", resumeHandler.ResumeMeta)
		api.GET("/resume/download", resumeHandler.DownloadResume)

		api.GET("/uploads/:filename", uploadsHandler.ServeUpload)
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
