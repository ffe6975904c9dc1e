package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/microposts/posts-api/internal/api/handler"
	"github.com/microposts/posts-api/internal/api/middleware"
	"github.com/microposts/posts-api/internal/core/ports"
	"github.com/microposts/posts-api/internal/core/service"
	"github.com/microposts/posts-api/internal/infrastructure/cache"
	"github.com/microposts/posts-api/internal/infrastructure/config"
	mongodb "github.com/microposts/posts-api/internal/infrastructure/db/mongo"
	healthhandlers "github.com/microposts/posts-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(middleware.ProcessTime())
	e.Use(echoprometheus.NewMiddleware("posts"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	tokenService := service.NewTokenService(cfg.JWT.Secret, cfg.JWT.Algorithm, cfg.JWT.Lifetime())

	var postCache ports.PostCache
	if cfg.Cache.Backend == "redis" {
		postCache = cache.NewRedis(rdb, cfg.Cache.TTL(), log)
	} else {
		postCache = cache.NewMemory(cfg.Cache.TTL())
	}

	authService := service.NewAuthService(userRepo, tokenService, log)
	postService := service.NewPostService(postRepo, postCache, log)

	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	authGuard := middleware.Auth(tokenService)

	// --- API routes ---
	api := e.Group("/api")
	api.POST("/signup", authHandler.Signup)
	api.POST("/login", authHandler.Login)

	posts := api.Group("/posts", authGuard)
	posts.POST("", postHandler.Create, middleware.PayloadLimit(cfg.MaxPayloadBytes))
	posts.GET("", postHandler.List)
	posts.DELETE("", postHandler.Delete)

	// --- Root, health probes, metrics (no auth required) ---
	rootHandler := healthhandlers.NewRootHandler(config.ProjectName)
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/", rootHandler.Welcome)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
