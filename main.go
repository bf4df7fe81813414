package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhi1440/RateMyMovieAPP/internal/di"
	"github.com/abhi1440/RateMyMovieAPP/internal/handler"
	authmw "github.com/abhi1440/RateMyMovieAPP/internal/middleware"
	"github.com/abhi1440/RateMyMovieAPP/internal/migrations"
	"github.com/abhi1440/RateMyMovieAPP/internal/service"
	"github.com/abhi1440/RateMyMovieAPP/pkg/config"
	"github.com/abhi1440/RateMyMovieAPP/pkg/database"
	"github.com/abhi1440/RateMyMovieAPP/pkg/logger"
	"github.com/abhi1440/RateMyMovieAPP/pkg/middleware"
	"github.com/abhi1440/RateMyMovieAPP/pkg/redis"
	"github.com/abhi1440/RateMyMovieAPP/pkg/telemetry"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logCfg := &logger.Config{
		Level:       "info",
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}
	if cfg.App.Debug {
		logCfg.Level = "debug"
	}
	if err := logger.Init(logCfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting RateMyMovie API...")

	ctx := context.Background()

	// Initialize tracing
	if _, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:        cfg.OTel.Enabled,
		ServiceName:    cfg.OTel.ServiceName,
		ServiceVersion: cfg.App.Version,
		Environment:    cfg.App.Environment,
		CollectorAddr:  cfg.OTel.CollectorAddr,
		SampleRatio:    cfg.OTel.SampleRatio,
	}); err != nil {
		appLog.Fatal(fmt.Sprintf("Telemetry initialization failed: %v", err))
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = telemetry.Shutdown(shutdownCtx)
	}()

	// Initialize database connection
	dbCfg := &database.PostgresConfig{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxConns:        int32(cfg.Database.MaxOpenConns),
		MinConns:        int32(cfg.Database.MaxIdleConns),
		MaxConnLifetime: cfg.Database.ConnMaxLifetime,
		MaxConnIdleTime: cfg.Database.ConnMaxIdleTime,
		ConnectTimeout:  5 * time.Second,
		MaxRetries:      3,
		RetryInterval:   time.Second,
		EnableTracing:   cfg.OTel.Enabled,
	}
	db, err := database.NewPostgres(ctx, dbCfg)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)", dbCfg.MinConns, dbCfg.MaxConns))

	// Apply schema migrations
	if err := migrations.Up(ctx, db.Pool()); err != nil {
		appLog.Fatal(fmt.Sprintf("Migrations failed: %v", err))
	}

	// Initialize Redis. The cache is optional: without it, movie lists
	// hit the database directly and logout degrades to cookie clearing.
	var cache *redis.Client
	if cfg.Redis.Enabled {
		redisCfg := redis.DefaultConfig()
		redisCfg.Host = cfg.Redis.Host
		redisCfg.Port = cfg.Redis.Port
		redisCfg.Password = cfg.Redis.Password
		redisCfg.DB = cfg.Redis.DB
		redisCfg.PoolSize = cfg.Redis.PoolSize
		redisCfg.MinIdleConns = cfg.Redis.MinIdleConns

		cache, err = redis.NewClient(ctx, redisCfg)
		if err != nil {
			appLog.Warn("Redis unavailable, continuing without cache", zap.Error(err))
			cache = nil
		} else {
			defer cache.Close()
			appLog.Info(fmt.Sprintf("Redis connected at %s", redisCfg.Addr()))
		}
	}

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:     db,
		Cache:  cache,
		Logger: appLog,
		ServiceConfig: &service.AuthServiceConfig{
			JWTSecret:  cfg.JWT.Secret,
			TokenTTL:   cfg.JWT.TokenTTL,
			Issuer:     cfg.JWT.Issuer,
			BcryptCost: 10,
		},
		CookieConfig: handler.CookieConfig{
			Name:   cfg.JWT.CookieName,
			MaxAge: int(cfg.JWT.TokenTTL.Seconds()),
			Secure: cfg.IsProduction(),
		},
	})

	// Setup Gin
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())
	if cfg.OTel.Enabled {
		router.Use(telemetry.TracingMiddleware(cfg.OTel.ServiceName))
	}

	// Health check endpoints
	router.GET("/health", container.HealthHandler.Health)
	router.GET("/ready", container.HealthHandler.Ready)

	authenticate := authmw.Authenticate(container.AuthService, cfg.JWT.CookieName)
	requireAdmin := authmw.RequireAdmin()

	// API routes
	v1 := router.Group("/api/v1")
	{
		users := v1.Group("/users")
		{
			users.POST("", container.UserHandler.Register)
			users.POST("/login", container.UserHandler.Login)
			users.POST("/logout", authenticate, container.UserHandler.Logout)
			users.GET("", authenticate, requireAdmin, container.UserHandler.List)
			users.GET("/profile", authenticate, container.UserHandler.GetProfile)
			users.PUT("/profile", authenticate, container.UserHandler.UpdateProfile)
			users.PUT("/:id/promote", authenticate, requireAdmin, container.UserHandler.Promote)
		}

		movies := v1.Group("/movies")
		{
			movies.GET("", container.MovieHandler.List)
			movies.GET("/browse", container.MovieHandler.Browse)
			movies.GET("/new", container.MovieHandler.Newest)
			movies.GET("/top", container.MovieHandler.Top)
			movies.GET("/random", container.MovieHandler.Random)
			movies.GET("/:id", container.MovieHandler.Get)

			movies.POST("", authenticate, requireAdmin, container.MovieHandler.Create)
			movies.PUT("/:id", authenticate, requireAdmin, container.MovieHandler.Update)
			movies.DELETE("/:id", authenticate, requireAdmin, container.MovieHandler.Delete)
		}

		genres := v1.Group("/genre")
		{
			genres.GET("", container.GenreHandler.List)
			genres.GET("/:id", container.GenreHandler.Get)

			genres.POST("", authenticate, requireAdmin, container.GenreHandler.Create)
			genres.PUT("/:id", authenticate, requireAdmin, container.GenreHandler.Update)
			genres.DELETE("/:id", authenticate, requireAdmin, container.GenreHandler.Delete)
		}
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ReadHeaderTimeout: 2 * time.Second,
	}

	// Start server in goroutine
	go func() {
		appLog.Info(fmt.Sprintf("RateMyMovie API listening on %s", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Failed to start server: %v", err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Fatal(fmt.Sprintf("Server forced to shutdown: %v", err))
	}

	appLog.Info("Server exited gracefully")
}
