package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/takeo/dojomaster/internal/app/controllers"
	appRepos "github.com/takeo/dojomaster/internal/app/repositories"
	appRoutes "github.com/takeo/dojomaster/internal/app/routes"
	appServices "github.com/takeo/dojomaster/internal/app/services"
	"github.com/takeo/dojomaster/internal/config"
	appMiddleware "github.com/takeo/dojomaster/internal/middleware"
	pkgAuth "github.com/takeo/dojomaster/internal/pkg/auth"
	"github.com/takeo/dojomaster/internal/pkg/logger"
	"github.com/takeo/dojomaster/internal/seed"
	"github.com/takeo/dojomaster/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Services          appServices.Services
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	RankController    *appControllers.RankController
	ExamController    *appControllers.ExamController
	MeController      *appControllers.MeController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	Sessions          *pkgAuth.SessionManager
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStore opens the configured record store backend and seeds any missing
// collection.
func SetupStore(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		st = store.NewMemoryStore()
	case config.DriverFile:
		st, err = store.OpenFileStore(cfg.Storage.Path)
	case config.DriverRedis:
		st, err = store.OpenRedisStore(ctx, store.RedisConfig{
			Host:     cfg.Storage.Redis.Host,
			Port:     cfg.Storage.Redis.Port,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
	case config.DriverPostgres:
		st, err = store.OpenPostgresStore(ctx, store.PostgresConfig{
			Host:     cfg.Storage.Postgres.Host,
			Port:     cfg.Storage.Postgres.Port,
			User:     cfg.Storage.Postgres.User,
			Password: cfg.Storage.Postgres.Password,
			DBName:   cfg.Storage.Postgres.DBName,
			SSLMode:  cfg.Storage.Postgres.SSLMode,
		})
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		lgr.Error().Err(err).Str("driver", cfg.Storage.Driver).Msg("Failed to open record store")
		return nil, err
	}
	lgr.Info().Str("driver", cfg.Storage.Driver).Msg("Record store opened")

	if err := seed.EnsureDefaults(ctx, st, cfg.Auth.HashPasswords, lgr); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("failed to seed default data: %w", err)
	}

	return st, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, st store.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(st)
	deps.Sessions = pkgAuth.NewSessionManager()

	rankService := appServices.NewRankService(deps.Repos.RankRepository)
	studentService := appServices.NewStudentService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Repos.RankRepository,
		appServices.StudentServiceConfig{
			DefaultPassword: cfg.Auth.DefaultPassword,
			EmailDomain:     cfg.Auth.EmailDomain,
			HashPasswords:   cfg.Auth.HashPasswords,
		},
		lgr,
	)
	examService := appServices.NewExamService(
		deps.Repos.ExamRepository,
		deps.Repos.StudentRepository,
		rankService,
		appServices.ExamServiceConfig{RequireAdjacent: cfg.Promotion.RequireAdjacent},
		lgr,
	)
	authService := appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.StudentRepository,
		deps.Sessions,
		cfg.Auth.HashPasswords,
		lgr,
	)

	deps.Services = appServices.Services{
		AuthService:    authService,
		StudentService: studentService,
		RankService:    rankService,
		ExamService:    examService,
	}

	deps.AuthController = appControllers.NewAuthController(authService)
	deps.StudentController = appControllers.NewStudentController(studentService, rankService, examService)
	deps.RankController = appControllers.NewRankController(rankService)
	deps.ExamController = appControllers.NewExamController(examService)
	deps.MeController = appControllers.NewMeController(studentService, rankService, examService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Sessions)

	return deps, nil
}

// SetupRouter builds the gin engine with middleware and all routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.RankController,
		deps.ExamController,
		deps.MeController,
		deps.AuthMiddleware,
	)

	return router
}
