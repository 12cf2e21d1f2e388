package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/bloghub/blog-api/docs"
	"github.com/bloghub/blog-api/internal/api/handler"
	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
	"github.com/bloghub/blog-api/internal/core/service"
	mongodb "github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	"github.com/bloghub/blog-api/internal/pkg/token"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, activity ports.ActivityDispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	// Images travel inline as data URIs, so allow bodies bigger than usual.
	e.Use(echomiddleware.BodyLimit("4M"))
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	blogRepo := mongodb.NewBlogRepository(db)
	authService := service.NewAuthService(userRepo, tokens, log)
	blogService := service.NewBlogService(blogRepo, activity, log)
	authHandler := handler.NewAuthHandler(authService)
	blogHandler := handler.NewBlogHandler(blogService)
	auth := middleware.Auth(tokens)

	// --- Auth routes (no token: they establish identity) ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Blog routes ---
	e.GET("/blog", blogHandler.List, auth)
	e.POST("/blog", blogHandler.Create, auth, middleware.RequireRole(domain.RoleUser))
	e.GET("/blog/:id", blogHandler.Get, auth)
	e.PUT("/blog/:id", blogHandler.Update, auth)
	e.PATCH("/blog/:id", blogHandler.Update, auth)
	e.DELETE("/blog/:id", blogHandler.Delete, auth)

	// --- Role-gated dashboards (exact role match, no hierarchy) ---
	e.GET("/admin", blogHandler.AdminDashboard, auth, middleware.RequireRole(domain.RoleAdmin))
	e.GET("/user", blogHandler.UserDashboard, auth, middleware.RequireRole(domain.RoleUser))

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
