package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/courseregistry/internal/app/controllers"
	appRoutes "github.com/yigit/courseregistry/internal/app/routes"
	appServices "github.com/yigit/courseregistry/internal/app/services"
	"github.com/yigit/courseregistry/internal/config"
	appMiddleware "github.com/yigit/courseregistry/internal/middleware"
	"github.com/yigit/courseregistry/internal/pkg/logger"
	"github.com/yigit/courseregistry/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Registrar          appServices.RegistrarService // Interface type
	CourseController   *appControllers.CourseController
	StudentController  *appControllers.StudentController
	OfferingController *appControllers.OfferingController
	RegistryController *appControllers.RegistryController
	Logger             zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// Capacities converts the registry configuration section.
func Capacities(cfg *config.Config) appServices.Capacities {
	return appServices.Capacities{
		Courses:       cfg.Registry.CourseCapacity,
		Students:      cfg.Registry.StudentCapacity,
		Offerings:     cfg.Registry.OfferingCapacity,
		Prerequisites: cfg.Registry.PrerequisiteCapacity,
		Completed:     cfg.Registry.CompletedCapacity,
		Attendees:     cfg.Registry.AttendeeCapacity,
	}
}

// SeedRegistrar applies the configured seed file. A missing path is not an error,
// and failing entries are logged without stopping startup.
func SeedRegistrar(ctx context.Context, cfg *config.Config, registrar appServices.RegistrarService, lgr zerolog.Logger) error {
	if cfg.Seed.Path == "" {
		return nil
	}
	if _, err := os.Stat(cfg.Seed.Path); os.IsNotExist(err) {
		lgr.Warn().Str("path", cfg.Seed.Path).Msg("Seed file not found, starting empty")
		return nil
	}

	data, err := seed.LoadFile(cfg.Seed.Path)
	if err != nil {
		return err
	}
	if err := seed.Apply(ctx, registrar, data, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to apply all seed data, proceeding anyway...")
	}
	return nil
}

// BuildDependencies initializes the registrar and controllers.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Registrar = appServices.NewRegistrarService(Capacities(cfg), lgr)
	if err := SeedRegistrar(context.Background(), cfg, deps.Registrar, lgr); err != nil {
		return nil, fmt.Errorf("failed to seed registrar: %w", err)
	}

	deps.CourseController = appControllers.NewCourseController(deps.Registrar)
	deps.StudentController = appControllers.NewStudentController(deps.Registrar)
	deps.OfferingController = appControllers.NewOfferingController(deps.Registrar)
	deps.RegistryController = appControllers.NewRegistryController(deps.Registrar)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(
		appMiddleware.RequestID(),
		appMiddleware.Logger(lgr),
		appMiddleware.Recovery(),
	)

	appRoutes.SetupRouter(router,
		deps.CourseController,
		deps.StudentController,
		deps.OfferingController,
		deps.RegistryController,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
	router.GET("/health", func(c *gin.Context) {
		if _, err := deps.Registrar.Stats(c.Request.Context()); err != nil {
			appMiddleware.HandleAPIError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router, nil
}
