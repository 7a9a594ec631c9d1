package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/vitalsync/backend/internal/config"
	"github.com/vitalsync/backend/internal/handlers"
	"github.com/vitalsync/backend/internal/logger"
	"github.com/vitalsync/backend/internal/middleware"
	"github.com/vitalsync/backend/internal/repository"
	"github.com/vitalsync/backend/internal/service"
	"github.com/vitalsync/backend/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long:  `Start the HTTP API server and listen for requests.`,
	RunE:  runServe,
}

var (
	port string
)

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Override port from flag if provided
	if port != "" {
		cfg.Server.Port = port
	}

	logger.SetDefault(logger.NewSlogLogger(logger.Config{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: cfg.Log.Format,
	}))

	logger.Info("starting VitalSync API server",
		logger.String("env", cfg.Server.Env),
		logger.String("database", cfg.Database.Path))

	// Open and migrate the database
	db, err := storage.Open(ctx, cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	physicalRepo := repository.NewPhysicalRepository(db)
	mentalRepo := repository.NewMentalRepository(db)
	sleepRepo := repository.NewSleepRepository(db)
	scoreRepo := repository.NewWellnessScoreRepository(db)
	insightRepo := repository.NewInsightLogRepository(db)
	tokenRepo := repository.NewGoogleFitTokenRepository(db)

	// Initialize services
	summaryService := service.NewSummaryService(physicalRepo, mentalRepo, sleepRepo, scoreRepo, insightRepo, db)
	recordService := service.NewRecordService(physicalRepo, mentalRepo, sleepRepo, summaryService)
	authService := service.NewAuthService(userRepo)
	googleFitService := service.NewGoogleFitService(cfg.Google, tokenRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	recordHandler := handlers.NewRecordHandler(recordService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	googleFitHandler := handlers.NewGoogleFitHandler(googleFitService)

	// Set Gin mode based on environment
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"env":    cfg.Server.Env,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
		}

		v1.POST("/physical-health", recordHandler.CreatePhysical)
		v1.GET("/physical-health/:user_id", recordHandler.GetPhysical)
		v1.POST("/mental-health", recordHandler.CreateMental)
		v1.GET("/mental-health/:user_id", recordHandler.GetMental)
		v1.POST("/sleep", recordHandler.CreateSleep)

		v1.GET("/health-summary/:user_id", summaryHandler.GetHealthSummary)

		googleFit := v1.Group("/google-fit")
		{
			googleFit.POST("/connect", googleFitHandler.Connect)
			googleFit.GET("/steps/:user_id", googleFitHandler.Steps)
		}
	}

	logger.Info("server listening", logger.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}
