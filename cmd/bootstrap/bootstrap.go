package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-booking-api/config"
	deliveryHttp "hospital-booking-api/internal/delivery/http"
	"hospital-booking-api/internal/delivery/http/handler"
	"hospital-booking-api/internal/delivery/http/middleware"
	"hospital-booking-api/internal/infrastructure/cache"
	"hospital-booking-api/internal/infrastructure/database"
	"hospital-booking-api/internal/repository"
	"hospital-booking-api/internal/service"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/jwt"
	"hospital-booking-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server

	sweeper     *service.RetentionSweeper
	sweeperStop context.CancelFunc
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, sweeper := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.sweeper = sweeper

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.RetentionSweeper) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	clientProfileRepo := repository.NewClientProfileRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	adminProfileRepo := repository.NewHospitalAdminProfileRepository()
	hospitalRepo := repository.NewHospitalRepository()
	serviceRepo := repository.NewServiceRepository()
	specializationRepo := repository.NewSpecializationRepository()
	scheduleRepo := repository.NewScheduleRepository()
	visitRepo := repository.NewVisitRepository()
	bookingRepo := repository.NewBookingRepository()
	ratingStarRepo := repository.NewRatingStarRepository()
	reviewRepo := repository.NewReviewRepository()
	feedbackRepo := repository.NewFeedbackRepository()
	hospitalLikeRepo := repository.NewHospitalLikeRepository()
	doctorLikeRepo := repository.NewDoctorLikeRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize domain services
	auditService := service.NewAuditService(log, auditLogRepo)
	ratingService := service.NewRatingService(log, reviewRepo, feedbackRepo, hospitalRepo, doctorProfileRepo)
	sweeper := service.NewRetentionSweeper(db, log, scheduleRepo, visitRepo, cfg.App.SweepInterval)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, clientProfileRepo, doctorProfileRepo, adminProfileRepo, jwtService, redisClient)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, hospitalRepo, serviceRepo)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorProfileRepo, hospitalRepo, specializationRepo)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, serviceRepo, specializationRepo)
	searchUsecase := usecase.NewSearchUsecase(db, log, doctorProfileRepo, hospitalRepo, serviceRepo, specializationRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, doctorProfileRepo, scheduleRepo, visitRepo, auditService)
	visitUsecase := usecase.NewVisitUsecase(db, log, doctorProfileRepo, visitRepo, auditService)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, visitRepo, auditService)
	reviewUsecase := usecase.NewReviewUsecase(db, log, reviewRepo, hospitalRepo, ratingStarRepo, ratingService, auditService)
	feedbackUsecase := usecase.NewFeedbackUsecase(db, log, feedbackRepo, doctorProfileRepo, ratingStarRepo, ratingService, auditService)
	likeUsecase := usecase.NewLikeUsecase(db, log, hospitalLikeRepo, doctorLikeRepo, hospitalRepo, doctorProfileRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	catalogHandler := handler.NewCatalogHandler(catalogUsecase)
	searchHandler := handler.NewSearchHandler(searchUsecase)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	visitHandler := handler.NewVisitHandler(visitUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	reviewHandler := handler.NewReviewHandler(reviewUsecase, customValidator)
	feedbackHandler := handler.NewFeedbackHandler(feedbackUsecase, customValidator)
	likeHandler := handler.NewLikeHandler(likeUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		hospitalHandler,
		doctorHandler,
		catalogHandler,
		searchHandler,
		scheduleHandler,
		visitHandler,
		bookingHandler,
		reviewHandler,
		feedbackHandler,
		likeHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, sweeper
}

// Run starts the HTTP server, the retention sweeper, and handles
// graceful shutdown
func (app *App) Run() {
	// Start retention sweeper in background
	sweepCtx, cancel := context.WithCancel(context.Background())
	app.sweeperStop = cancel
	go app.sweeper.Run(sweepCtx)

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Stop the retention sweeper
	if app.sweeperStop != nil {
		app.sweeperStop()
	}

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
