package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/simfut/league-api/internal/api/handler"
	"github.com/simfut/league-api/internal/api/middleware"
	"github.com/simfut/league-api/internal/core/service"
	"github.com/simfut/league-api/internal/infrastructure/config"
	mongorepo "github.com/simfut/league-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/simfut/league-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("league"))

	// --- Repositories ---
	userRepo := mongorepo.NewUserRepository(db)
	teamRepo := mongorepo.NewTeamRepository(db)
	playerRepo := mongorepo.NewPlayerRepository(db)
	matchRepo := mongorepo.NewMatchRepository(db)
	standingsCache := redisrepo.NewStandingsCache(rdb, cfg.StandingsTTL)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(userRepo, service.NewPasswordHasher(0), tokenService, log)
	teamService := service.NewTeamService(teamRepo, log)
	playerService := service.NewPlayerService(playerRepo, teamRepo, log)
	matchService := service.NewMatchService(matchRepo, teamRepo, log)
	standingsService := service.NewStandingsService(matchRepo, teamRepo, standingsCache, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	teamHandler := handler.NewTeamHandler(teamService)
	playerHandler := handler.NewPlayerHandler(playerService)
	matchHandler := handler.NewMatchHandler(matchService)
	standingsHandler := handler.NewStandingsHandler(standingsService)

	// --- Auth routes (no token required) ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog routes ---
	// The auth middleware only establishes identity; the role checks inside
	// each service are what reject unauthenticated or under-privileged calls.
	catalog := e.Group("/api", middleware.Auth(tokenService))

	catalog.GET("/teams", teamHandler.List)
	catalog.GET("/teams/:id", teamHandler.Get)
	catalog.POST("/teams", teamHandler.Create)
	catalog.PUT("/teams/:id", teamHandler.Update)
	catalog.DELETE("/teams/:id", teamHandler.Delete)

	catalog.GET("/players", playerHandler.List)
	catalog.GET("/players/:id", playerHandler.Get)
	catalog.POST("/players", playerHandler.Create)
	catalog.PUT("/players/:id", playerHandler.Update)
	catalog.DELETE("/players/:id", playerHandler.Delete)

	catalog.GET("/matches", matchHandler.List)
	catalog.GET("/matches/:id", matchHandler.Get)
	catalog.POST("/matches", matchHandler.Create)
	catalog.PUT("/matches/:id", matchHandler.Update)
	catalog.DELETE("/matches/:id", matchHandler.Delete)

	catalog.GET("/standings", standingsHandler.Table)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
