package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"petcare-facility-api/config"
	deliveryHttp "petcare-facility-api/internal/delivery/http"
	"petcare-facility-api/internal/delivery/http/handler"
	"petcare-facility-api/internal/delivery/http/middleware"
	"petcare-facility-api/internal/infrastructure/cache"
	"petcare-facility-api/internal/infrastructure/database"
	"petcare-facility-api/internal/repository"
	"petcare-facility-api/internal/service"
	"petcare-facility-api/internal/usecase"
	"petcare-facility-api/pkg/jwt"
	"petcare-facility-api/pkg/validator"

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

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	logrus.Info("Database schema migrated")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	roomTypeRepo := repository.NewRoomTypeRepository()
	roomRepo := repository.NewRoomRepository()
	serviceTypeRepo := repository.NewServiceTypeRepository()
	serviceRepo := repository.NewServiceRepository()
	variantRepo := repository.NewServiceVariantRepository()
	bookingItemRepo := repository.NewBookingServiceItemRepository()
	cameraRepo := repository.NewCameraRepository()
	historyRepo := repository.NewRoomHistoryRepository()
	medicineRepo := repository.NewMedicineRepository()
	treatmentRepo := repository.NewTreatmentRepository()
	healthBookRepo := repository.NewPetHealthBookRepository()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	imageService := service.NewImageService(cfg.Upload, log)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, redisClient)
	roomTypeUsecase := usecase.NewRoomTypeUsecase(db, log, roomTypeRepo, roomRepo, auditService)
	roomUsecase := usecase.NewRoomUsecase(db, log, roomRepo, roomTypeRepo, imageService, auditService)
	serviceTypeUsecase := usecase.NewServiceTypeUsecase(db, log, serviceTypeRepo, auditService)
	serviceUsecase := usecase.NewServiceUsecase(db, log, serviceRepo, serviceTypeRepo, variantRepo, imageService, auditService)
	variantUsecase := usecase.NewServiceVariantUsecase(db, log, variantRepo, serviceRepo, bookingItemRepo, auditService)
	cameraUsecase := usecase.NewCameraUsecase(db, log, cameraRepo, historyRepo, auditService)
	historyUsecase := usecase.NewRoomHistoryUsecase(db, log, historyRepo, roomRepo, bookingItemRepo, cameraRepo, auditService)
	medicineUsecase := usecase.NewMedicineUsecase(db, log, medicineRepo, auditService)
	treatmentUsecase := usecase.NewTreatmentUsecase(db, log, treatmentRepo, auditService)
	healthBookUsecase := usecase.NewPetHealthBookUsecase(db, log, healthBookRepo, bookingItemRepo, medicineRepo, auditService)
	reportUsecase := usecase.NewReportUsecase(db, log, roomRepo, historyRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	roomTypeHandler := handler.NewRoomTypeHandler(roomTypeUsecase, customValidator)
	roomHandler := handler.NewRoomHandler(roomUsecase, customValidator)
	serviceTypeHandler := handler.NewServiceTypeHandler(serviceTypeUsecase, customValidator)
	serviceHandler := handler.NewServiceHandler(serviceUsecase, customValidator)
	variantHandler := handler.NewServiceVariantHandler(variantUsecase, customValidator)
	cameraHandler := handler.NewCameraHandler(cameraUsecase, customValidator)
	historyHandler := handler.NewRoomHistoryHandler(historyUsecase, customValidator)
	medicineHandler := handler.NewMedicineHandler(medicineUsecase, customValidator)
	treatmentHandler := handler.NewTreatmentHandler(treatmentUsecase, customValidator)
	healthBookHandler := handler.NewPetHealthBookHandler(healthBookUsecase, customValidator)
	reportHandler := handler.NewReportHandler(reportUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		roomTypeHandler,
		roomHandler,
		serviceTypeHandler,
		serviceHandler,
		variantHandler,
		cameraHandler,
		historyHandler,
		medicineHandler,
		treatmentHandler,
		healthBookHandler,
		reportHandler,
		authMiddleware,
		corsMiddleware,
		cfg.Upload.Dir,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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
