package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/ryalynne/hrms/internal/app/controllers"
	appMigrations "github.com/ryalynne/hrms/internal/app/migrations"
	appRepos "github.com/ryalynne/hrms/internal/app/repositories"
	appRoutes "github.com/ryalynne/hrms/internal/app/routes"
	appServices "github.com/ryalynne/hrms/internal/app/services"
	"github.com/ryalynne/hrms/internal/config"
	"github.com/ryalynne/hrms/internal/db"
	appMiddleware "github.com/ryalynne/hrms/internal/middleware"
	pkgAuth "github.com/ryalynne/hrms/internal/pkg/auth"
	"github.com/ryalynne/hrms/internal/pkg/logger"
	"github.com/ryalynne/hrms/internal/seed"
	schema "github.com/ryalynne/hrms/migrations"
)

// DefaultConfigPath is used when no --config flag is given
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	JWTService     *pkgAuth.JWTService
	AuthMiddleware *appMiddleware.AuthMiddleware
	Controllers    appRoutes.Controllers
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection. Migrations and seed
// data are applied when the configuration asks for them.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	if cfg.Database.AutoMigrate {
		if _, err := RunMigrations(ctx, cfg, database, lgr); err != nil {
			database.Close()
			return nil, err
		}
	}

	if cfg.Seed.Enabled {
		// Seed failures are logged but do not block startup
		if err := RunSeed(ctx, cfg, database, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// migrationsOnDisk reports whether the configured migrations directory exists
func migrationsOnDisk(cfg *config.Config) bool {
	if cfg.Database.MigrationsDir == "" {
		return false
	}
	info, err := os.Stat(cfg.Database.MigrationsDir)
	return err == nil && info.IsDir()
}

// RunMigrations applies pending schema migrations and returns how many ran.
// The configured directory wins over the schema compiled into the binary.
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (int, error) {
	migrator := appMigrations.NewMigrator(database.Pool, lgr)

	var (
		applied int
		err     error
	)
	if migrationsOnDisk(cfg) {
		lgr.Info().Str("source", cfg.Database.MigrationsDir).Msg("Running database migrations...")
		applied, err = migrator.MigrateFromDirectory(ctx, cfg.Database.MigrationsDir)
	} else {
		lgr.Info().Str("source", "embedded").Msg("Running database migrations...")
		applied, err = migrator.Migrate(ctx, schema.FS)
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}
	return applied, nil
}

// RunSeed creates the default job titles, positions and admin account.
func RunSeed(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) error {
	users := appRepos.NewUserRepository(database.Pool)
	return seed.Run(ctx, database, users, seed.Options{
		AdminEmail:    cfg.Seed.AdminEmail,
		AdminPassword: cfg.Seed.AdminPassword,
	}, lgr)
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	if database == nil || database.Pool == nil {
		return nil, errors.New("database pool is required")
	}

	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenTTL(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, lgr)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.AuthService)

	deps.Controllers = appRoutes.Controllers{
		Employee: appControllers.NewEmployeeController(deps.Services.EmployeeService, lgr),
		JobTitle: appControllers.NewJobTitleController(deps.Services.JobTitleService),
		Position: appControllers.NewPositionController(deps.Services.PositionService),
		Auth:     appControllers.NewAuthController(deps.Services.AuthService, lgr),
		Health:   appControllers.NewHealthController(),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterValidation()

	router := gin.New()
	router.Use(
		appMiddleware.RequestLogger(lgr),
		appMiddleware.Recovery(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
	)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appRoutes.Options{
		ProtectMutations: cfg.Auth.ProtectMutations,
	})

	return router
}
