package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	appAuth "github.com/tutorhub/backend/internal/app/auth"
	appControllers "github.com/tutorhub/backend/internal/app/controllers"
	appMigrations "github.com/tutorhub/backend/internal/app/migrations"
	appRepos "github.com/tutorhub/backend/internal/app/repositories"
	appRoutes "github.com/tutorhub/backend/internal/app/routes"
	appServices "github.com/tutorhub/backend/internal/app/services"
	"github.com/tutorhub/backend/internal/config"
	"github.com/tutorhub/backend/internal/db"
	appMiddleware "github.com/tutorhub/backend/internal/middleware"
	pkgAuth "github.com/tutorhub/backend/internal/pkg/auth"
	"github.com/tutorhub/backend/internal/pkg/filestorage"
	"github.com/tutorhub/backend/internal/pkg/helpers"
	"github.com/tutorhub/backend/internal/pkg/logger"
	"github.com/tutorhub/backend/internal/pkg/validation"
	"github.com/tutorhub/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	Services            *appServices.Services
	AuthController      *appControllers.AuthController
	UserController      *appControllers.UserController
	ClassController     *appControllers.ClassController
	SubjectController   *appControllers.SubjectController
	ResourceController  *appControllers.ResourceController
	PostController      *appControllers.PostController
	MessageController   *appControllers.MessageController
	TimetableController *appControllers.TimetableController
	AuthMiddleware      *appMiddleware.AuthMiddleware
	JWTService          *pkgAuth.JWTService
	AuthzService        *appAuth.AuthorizationService
	FileStorage         *filestorage.LocalStorage
	Logger              zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// creates the default admin account.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := appMigrations.NewMigrator(dbPool).MigrateFromDirectory(migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations applied")

	if err := seed.CreateDefaultAdmin(context.Background(), dbPool, cfg, lgr); err != nil {
		// The platform still runs without the seed; an existing admin may
		// already be in place.
		lgr.Error().Err(err).Msg("Failed to create default admin, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services, middleware and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Expired refresh tokens accumulate between restarts; sweep them once
	// at startup.
	if err := deps.Repos.TokenRepository.DeleteExpired(context.Background()); err != nil {
		lgr.Warn().Err(err).Msg("Failed to sweep expired refresh tokens")
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.AuthzService = appAuth.NewAuthorizationService(
		deps.Repos.ResourceRepository,
		deps.Repos.ClassRepository,
		deps.Repos.PostRepository,
	)

	accessTokenExp := helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour)
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  accessTokenExp,
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.Services = &appServices.Services{
		AuthService: appServices.NewAuthService(
			deps.Repos.UserRepository,
			deps.Repos.TokenRepository,
			deps.JWTService,
			lgr,
		),
		UserService: appServices.NewUserService(
			deps.Repos.UserRepository,
			deps.Repos.TokenRepository,
			lgr,
		),
		ClassService: appServices.NewClassService(
			deps.Repos.ClassRepository,
			deps.Repos.UserRepository,
			deps.AuthzService,
		),
		SubjectService: appServices.NewSubjectService(
			deps.Repos.SubjectRepository,
			deps.Repos.ClassRepository,
			deps.Repos.UserRepository,
			deps.AuthzService,
		),
		ResourceService: appServices.NewResourceService(
			deps.Repos.ResourceRepository,
			deps.FileStorage,
			deps.AuthzService,
			lgr,
		),
		PostService:    appServices.NewPostService(deps.Repos.PostRepository, deps.AuthzService),
		MessageService: appServices.NewMessageService(deps.Repos.MessageRepository, deps.Repos.UserRepository),
		TimetableService: appServices.NewTimetableService(
			deps.Repos.TimetableRepository,
			deps.AuthzService,
		),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.Repos.UserRepository)

	deps.AuthController = appControllers.NewAuthController(
		deps.Services.AuthService,
		int(accessTokenExp.Seconds()),
		cfg.JWT.CookieSecure,
	)
	deps.UserController = appControllers.NewUserController(deps.Services.UserService)
	deps.ClassController = appControllers.NewClassController(deps.Services.ClassService)
	deps.SubjectController = appControllers.NewSubjectController(deps.Services.SubjectService)
	deps.ResourceController = appControllers.NewResourceController(deps.Services.ResourceService)
	deps.PostController = appControllers.NewPostController(deps.Services.PostService)
	deps.MessageController = appControllers.NewMessageController(deps.Services.MessageService)
	deps.TimetableController = appControllers.NewTimetableController(deps.Services.TimetableService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Install the custom binding rules used by the DTO tags.
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.Register(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register custom validation rules")
		}
	}

	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
		ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.ClassController,
		deps.SubjectController,
		deps.ResourceController,
		deps.PostController,
		deps.MessageController,
		deps.TimetableController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	lgr.Info().Str("mode", cfg.Server.Mode).Msg("Router configured")
	return router
}
