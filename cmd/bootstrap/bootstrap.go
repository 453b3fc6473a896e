package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"appointment-data-proxy/config"
	deliveryHttp "appointment-data-proxy/internal/delivery/http"
	"appointment-data-proxy/internal/delivery/http/handler"
	"appointment-data-proxy/internal/delivery/http/middleware"
	"appointment-data-proxy/internal/infrastructure/cache"
	"appointment-data-proxy/internal/infrastructure/database"
	"appointment-data-proxy/internal/repository"
	"appointment-data-proxy/internal/usecase"
	"appointment-data-proxy/pkg/jwt"
	"appointment-data-proxy/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *database.Connections
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.Log)
	logrus.Info("Configuration loaded successfully")

	// Initialize databases
	db, err := database.NewConnections(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Databases connected successfully")

	// Initialize Redis (optional)
	redisClient, err := cache.NewRedisClient(context.Background(), cfg.Redis)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *database.Connections, redisClient *redis.Client) *http.Server {
	log := logrus.StandardLogger()
	jwtService := jwt.NewJWTService(cfg.Auth)
	customValidator := validator.NewValidator()
	batchSize := cfg.Streaming.BatchSize

	// Central database repositories
	patientRepo := repository.NewPatientRepository(db.Central)
	practiceRepo := repository.NewPracticeRepository(db.Central)
	fixedRemedyRepo := repository.NewFixedRemedyRepository(db.Central)

	// Company database repositories
	therapistRepo := repository.NewTherapistRepository(db.Company)
	individualRemedyRepo := repository.NewIndividualRemedyRepository(db.Company)
	appointmentRepo := repository.NewAppointmentRepository(db.Company)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, batchSize)
	practiceUsecase := usecase.NewPracticeUsecase(log, practiceRepo, batchSize)
	fixedRemedyUsecase := usecase.NewFixedRemedyUsecase(log, fixedRemedyRepo, batchSize)
	therapistUsecase := usecase.NewTherapistUsecase(log, therapistRepo, batchSize)
	individualRemedyUsecase := usecase.NewIndividualRemedyUsecase(log, individualRemedyRepo, batchSize)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, patientRepo, practiceRepo, fixedRemedyRepo, batchSize)

	// Initialize handlers
	handlers := deliveryHttp.Handlers{
		Patient:          handler.NewPatientHandler(patientUsecase, customValidator, log),
		Practice:         handler.NewPracticeHandler(practiceUsecase, customValidator, log),
		FixedRemedy:      handler.NewFixedRemedyHandler(fixedRemedyUsecase, customValidator, log),
		Therapist:        handler.NewTherapistHandler(therapistUsecase, customValidator, log),
		IndividualRemedy: handler.NewIndividualRemedyHandler(individualRemedyUsecase, customValidator, log),
		Appointment:      handler.NewAppointmentHandler(appointmentUsecase, customValidator, log),
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient, log)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(handlers, authMiddleware, loggingMiddleware, corsMiddleware)

	// Only header reads are bounded; streams may run for minutes.
	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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

// Close closes all connections (databases, redis)
func (app *App) Close() {
	if app.DB != nil {
		app.DB.Close()
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
