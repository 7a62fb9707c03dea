package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/malek/tadreeb/internal/app/controllers"
	"github.com/malek/tadreeb/internal/app/migrations"
	"github.com/malek/tadreeb/internal/app/repositories"
	"github.com/malek/tadreeb/internal/app/routes"
	"github.com/malek/tadreeb/internal/app/services"
	"github.com/malek/tadreeb/internal/config"
	"github.com/malek/tadreeb/internal/db"
	"github.com/malek/tadreeb/internal/middleware"
	"github.com/malek/tadreeb/internal/pkg/auth"
	"github.com/malek/tadreeb/internal/pkg/filestorage"
	"github.com/malek/tadreeb/internal/pkg/helpers"
	"github.com/malek/tadreeb/internal/pkg/logger"
	"github.com/malek/tadreeb/internal/seed"
)

// Dependencies holds the wired application graph.
type Dependencies struct {
	Repos                *repositories.Repositories
	FileStorage          *filestorage.LocalStorage
	JWTService           *auth.JWTService
	AuthService          *services.AuthService
	FieldService         *services.FieldService
	CourseService        *services.CourseService
	AttachmentService    *services.AttachmentService
	StatsService         *services.StatsService
	AuthController       *controllers.AuthController
	FieldController      *controllers.FieldController
	CourseController     *controllers.CourseController
	AttachmentController *controllers.AttachmentController
	StatsController      *controllers.StatsController
	AuthMiddleware       *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the pool, runs migrations and seeds the admin.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrator := migrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultData(ctx, dbPool, cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and middleware.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = repositories.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Upload.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.ExpiresIn, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = services.NewAuthService(deps.Repos.UserRepository, deps.JWTService)
	deps.FieldService = services.NewFieldService(deps.Repos.FieldRepository, deps.Repos.CourseRepository)
	deps.CourseService = services.NewCourseService(deps.Repos.CourseRepository, deps.Repos.FieldRepository, deps.FileStorage)
	deps.AttachmentService = services.NewAttachmentService(
		deps.Repos.CourseRepository,
		deps.Repos.ImageRepository,
		deps.Repos.DocumentRepository,
		deps.FileStorage,
		cfg.Upload,
	)
	deps.StatsService = services.NewStatsService(deps.Repos.CourseRepository, deps.Repos.FieldRepository)

	deps.AuthMiddleware = middleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = controllers.NewAuthController(deps.AuthService)
	deps.FieldController = controllers.NewFieldController(deps.FieldService)
	deps.CourseController = controllers.NewCourseController(deps.CourseService)
	deps.AttachmentController = controllers.NewAttachmentController(deps.AttachmentService)
	deps.StatsController = controllers.NewStatsController(deps.StatsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with routes and static serving.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()

	routes.SetupRouter(router,
		deps.AuthController,
		deps.FieldController,
		deps.CourseController,
		deps.AttachmentController,
		deps.StatsController,
		deps.AuthMiddleware,
	)

	// Uploaded files are served straight off the disk
	router.Static("/uploads", deps.FileStorage.Root())

	return router
}
