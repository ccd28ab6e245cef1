// Package container builds the application graph once at startup and hands
// it to the router. Nothing in here is global.
package container

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/unibase/config"
	"github.com/oksasatya/unibase/internal/application"
	"github.com/oksasatya/unibase/internal/domain/repository"
	"github.com/oksasatya/unibase/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/unibase/internal/infrastructure/postgres"
	handlers "github.com/oksasatya/unibase/internal/interface/http"
	"github.com/oksasatya/unibase/internal/interface/middleware"
	"github.com/oksasatya/unibase/pkg/helpers"
)

// Repositories is the full set of storage ports.
type Repositories struct {
	Tx           repository.TxManager
	Users        repository.UserRepository
	Categories   repository.CategoryRepository
	Regions      repository.RegionRepository
	Locations    repository.LocationRepository
	Universities repository.UniversityRepository
	Departments  repository.DepartmentRepository
	Programs     repository.ProgramRepository
	Students     repository.StudentRepository
	News         repository.NewsRepository
	Comments     repository.CommentRepository
	Favorites    repository.FavoriteRepository
}

func PostgresRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Tx:           pginfra.NewTxManager(pool),
		Users:        pginfra.NewUserRepository(pool),
		Categories:   pginfra.NewCategoryRepository(pool),
		Regions:      pginfra.NewRegionRepository(pool),
		Locations:    pginfra.NewLocationRepository(pool),
		Universities: pginfra.NewUniversityRepository(pool),
		Departments:  pginfra.NewDepartmentRepository(pool),
		Programs:     pginfra.NewProgramRepository(pool),
		Students:     pginfra.NewStudentRepository(pool),
		News:         pginfra.NewNewsRepository(pool),
		Comments:     pginfra.NewCommentRepository(pool),
		Favorites:    pginfra.NewFavoriteRepository(pool),
	}
}

func MemoryRepositories(st *memory.Store) Repositories {
	return Repositories{
		Tx:           st,
		Users:        st.Users(),
		Categories:   st.Categories(),
		Regions:      st.Regions(),
		Locations:    st.Locations(),
		Universities: st.Universities(),
		Departments:  st.Departments(),
		Programs:     st.Programs(),
		Students:     st.Students(),
		News:         st.News(),
		Comments:     st.Comments(),
		Favorites:    st.Favorites(),
	}
}

// Deps are the infrastructure pieces main constructs. Redis and Uploader may
// be nil: rate limiting becomes a no-op and media upload answers 503.
type Deps struct {
	Config   *config.Config
	Logger   *logrus.Logger
	Repos    Repositories
	DB       handlers.Pinger
	Redis    *redis.Client
	Uploader application.ObjectUploader
}

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client
	JWT    *helpers.JWTManager
	Gate   *middleware.Gate
	Repos  Repositories

	Health       *handlers.HealthHandler
	Users        *handlers.UserHandler
	Categories   *handlers.CategoryHandler
	Regions      *handlers.RegionHandler
	Locations    *handlers.LocationHandler
	Universities *handlers.UniversityHandler
	Departments  *handlers.DepartmentHandler
	Programs     *handlers.ProgramHandler
	Students     *handlers.StudentHandler
	News         *handlers.NewsHandler
	Comments     *handlers.CommentHandler
	Favorites    *handlers.FavoriteHandler
	Media        *handlers.MediaHandler
}

func New(d Deps) *Container {
	cfg, log, r := d.Config, d.Logger, d.Repos
	jwt := helpers.NewJWTManager(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL)

	return &Container{
		Config: cfg,
		Logger: log,
		Redis:  d.Redis,
		JWT:    jwt,
		Gate:   middleware.NewGate(jwt, r.Users, log),
		Repos:  r,

		Health:       handlers.NewHealthHandler(d.DB, log),
		Users:        handlers.NewUserHandler(application.NewUserService(r.Users, r.Tx, jwt, log), log),
		Categories:   handlers.NewCategoryHandler(application.NewCategoryService(r.Categories, r.Tx, log), log),
		Regions:      handlers.NewRegionHandler(application.NewRegionService(r.Regions, r.Tx, log), log),
		Locations:    handlers.NewLocationHandler(application.NewLocationService(r.Locations, r.Regions, r.Tx, log), log),
		Universities: handlers.NewUniversityHandler(application.NewUniversityService(r.Universities, r.Categories, r.Locations, r.Tx, log), log),
		Departments:  handlers.NewDepartmentHandler(application.NewDepartmentService(r.Departments, r.Universities, r.Tx, log), log),
		Programs:     handlers.NewProgramHandler(application.NewProgramService(r.Programs, r.Departments, r.Tx, log), log),
		Students:     handlers.NewStudentHandler(application.NewStudentService(r.Students, r.Programs, r.Tx, log), log),
		News:         handlers.NewNewsHandler(application.NewNewsService(r.News, r.Tx, log), log),
		Comments:     handlers.NewCommentHandler(application.NewCommentService(r.Comments, r.Universities, r.Tx, log), log),
		Favorites:    handlers.NewFavoriteHandler(application.NewFavoriteService(r.Favorites, r.Universities, r.Tx, log), log),
		Media:        handlers.NewMediaHandler(application.NewMediaService(d.Uploader, cfg.MediaMaxBytes, log), log),
	}
}
