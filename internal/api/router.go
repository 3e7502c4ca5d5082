package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/directoryhq/user-api/docs"
	"github.com/directoryhq/user-api/internal/api/handler"
	"github.com/directoryhq/user-api/internal/api/middleware"
	"github.com/directoryhq/user-api/internal/core/ports"
	"github.com/directoryhq/user-api/internal/core/service"
	mongodb "github.com/directoryhq/user-api/internal/infrastructure/db/mongo"
	redisdb "github.com/directoryhq/user-api/internal/infrastructure/db/redis"
	"github.com/directoryhq/user-api/internal/pkg/config"
	"github.com/directoryhq/user-api/internal/pkg/hash"
	"github.com/directoryhq/user-api/internal/pkg/token"
)

// NewRouter builds the Echo instance with all routes registered, backed by
// the MongoDB user directory with the Redis read-through cache in front.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	repo := redisdb.NewCachedUserRepository(
		mongodb.NewUserRepository(db),
		redisdb.NewUserCache(rdb),
		log,
	)

	e := newRouter(repo, cfg, log)

	// Readiness needs the concrete clients to ping.
	healthDeps := handler.NewHealthDependenciesHandler(db, rdb)
	e.GET("/health/ready", healthDeps.Readiness)

	return e
}

// newRouter wires everything above the storage boundary; tests plug in a
// stub repository here.
func newRouter(repo ports.UserRepository, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userdir"))

	// --- Dependencies ---
	codec := token.NewCodec(cfg.JWTSecret)
	hasher := hash.NewBcrypt()
	authService := service.NewAuthService(repo, hasher, codec, cfg.TokenTTL, log)
	userService := service.NewUserService(repo, hasher, log)
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/token", authHandler.Login)

	// --- Admin-gated directory routes ---
	users := e.Group("/users", middleware.Auth(codec), middleware.RequireAdmin())
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.PUT("/:id/role", userHandler.UpdateRole)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational endpoints ---
	e.GET("/health", handler.NewHealthHandler().Liveness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
