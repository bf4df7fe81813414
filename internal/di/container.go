package di

import (
	"github.com/abhi1440/RateMyMovieAPP/internal/handler"
	"github.com/abhi1440/RateMyMovieAPP/internal/repository"
	"github.com/abhi1440/RateMyMovieAPP/internal/service"
	"github.com/abhi1440/RateMyMovieAPP/pkg/database"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
	"github.com/abhi1440/RateMyMovieAPP/pkg/redis"
)

// Container holds all dependencies for the API
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache *redis.Client

	// Repositories
	UserRepo  repository.UserRepository
	MovieRepo repository.MovieRepository
	GenreRepo repository.GenreRepository
	Denylist  repository.TokenDenylist

	// Services
	AuthService  service.AuthService
	MovieService service.MovieService
	GenreService service.GenreService

	// Handlers
	HealthHandler *handler.HealthHandler
	UserHandler   *handler.UserHandler
	MovieHandler  *handler.MovieHandler
	GenreHandler  *handler.GenreHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB            *database.PostgresDB
	Cache         *redis.Client // nil disables caching and revocation
	Logger        *logger.Logger
	ServiceConfig *service.AuthServiceConfig
	CookieConfig  handler.CookieConfig
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Cache: cfg.Cache,
	}

	// Initialize repositories
	c.UserRepo = repository.NewPostgresUserRepository(cfg.DB.Pool())
	c.GenreRepo = repository.NewPostgresGenreRepository(cfg.DB.Pool())
	c.MovieRepo = repository.NewCachedMovieRepository(
		repository.NewPostgresMovieRepository(cfg.DB.Pool()),
		cfg.Cache,
		cfg.Logger,
	)
	c.Denylist = repository.NewRedisTokenDenylist(cfg.Cache)

	// Initialize services
	c.AuthService = service.NewAuthService(c.UserRepo, c.Denylist, cfg.ServiceConfig)
	c.MovieService = service.NewMovieService(c.MovieRepo, c.GenreRepo)
	c.GenreService = service.NewGenreService(c.GenreRepo)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Cache)
	c.UserHandler = handler.NewUserHandler(c.AuthService, cfg.CookieConfig, cfg.Logger)
	c.MovieHandler = handler.NewMovieHandler(c.MovieService, cfg.Logger)
	c.GenreHandler = handler.NewGenreHandler(c.GenreService, cfg.Logger)

	return c
}
