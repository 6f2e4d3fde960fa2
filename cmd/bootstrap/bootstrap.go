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

	"clinic-booking/config"
	deliveryHttp "clinic-booking/internal/delivery/http"
	"clinic-booking/internal/delivery/http/handler"
	"clinic-booking/internal/delivery/http/middleware"
	"clinic-booking/internal/infrastructure/cache"
	"clinic-booking/internal/infrastructure/database"
	"clinic-booking/internal/repository"
	"clinic-booking/internal/service"
	"clinic-booking/internal/usecase"
	"clinic-booking/pkg/jwt"
	"clinic-booking/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// NewLogger builds the JSON logger used by every layer.
func NewLogger(cfg config.AppConfig) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := NewLogger(cfg.App)
	log.Info("Configuration loaded successfully")

	app := &App{Config: cfg, Log: log}

	db, err := database.NewPostgresConnection(cfg, log)
	if err != nil {
		return nil, err
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(cfg.Redis, log)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient

	app.Server = initializeServer(cfg, log, db, redisClient)

	return app, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, db *gorm.DB, redisClient *redis.Client) *http.Server {
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Repositories
	userRepo := repository.NewUserRepository()
	roleRepo := repository.NewRoleRepository()
	scheduleRepo := repository.NewScheduleSlotRepository()
	serviceTypeRepo := repository.NewServiceTypeRepository()
	serviceRepo := repository.NewServiceRepository()
	dentistServiceRepo := repository.NewDentistServiceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	appointmentTypeRepo := repository.NewAppointmentTypeRepository()
	appointmentLogRepo := repository.NewAppointmentLogRepository()
	reminderRepo := repository.NewReminderRepository()
	activityLogRepo := repository.NewActivityLogRepository()

	// Services
	tokenStore := service.NewRedisTokenStore(redisClient, log)
	activityLogger := service.NewActivityLogger(db, log, activityLogRepo)

	// Usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, roleRepo, jwtService, tokenStore, activityLogger)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, roleRepo, tokenStore, activityLogger)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, userRepo, scheduleRepo, appointmentRepo, activityLogger)
	dentistServiceUsecase := usecase.NewDentistServiceUsecase(db, log, userRepo, dentistServiceRepo, activityLogger)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, appointmentLogRepo, scheduleRepo, activityLogger)
	reminderUsecase := usecase.NewReminderUsecase(db, log, reminderRepo, appointmentRepo, activityLogger)
	catalogUsecase := usecase.NewCatalogUsecase(db, log, roleRepo, serviceTypeRepo, serviceRepo, appointmentTypeRepo, activityLogger)
	activityLogUsecase := usecase.NewActivityLogUsecase(db, log, activityLogRepo)

	// Handlers
	router := deliveryHttp.NewRouter(
		handler.NewAuthHandler(authUsecase, customValidator),
		handler.NewUserHandler(userUsecase, customValidator),
		handler.NewScheduleHandler(scheduleUsecase, customValidator),
		handler.NewDentistServiceHandler(dentistServiceUsecase, customValidator),
		handler.NewAppointmentHandler(appointmentUsecase, customValidator),
		handler.NewReminderHandler(reminderUsecase, customValidator),
		handler.NewCatalogHandler(catalogUsecase, customValidator),
		handler.NewActivityLogHandler(activityLogUsecase),
		middleware.NewAuthMiddleware(jwtService, tokenStore, log),
		middleware.NewCORSMiddleware(cfg.App.CORSOrigin),
	)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and blocks until it is shut down.
func (app *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		app.Log.WithFields(logrus.Fields{
			"port": app.Config.App.Port,
			"env":  app.Config.App.Env,
		}).Info("Server starting")
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()
	app.Log.Info("Server shutdown complete")
	return nil
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		if sqlDB, err := app.DB.DB(); err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
