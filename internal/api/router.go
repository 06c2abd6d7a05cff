package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/finzzup/portal-api/docs"
	"github.com/finzzup/portal-api/internal/api/handler"
	"github.com/finzzup/portal-api/internal/api/middleware"
	"github.com/finzzup/portal-api/internal/core/domain"
	"github.com/finzzup/portal-api/internal/core/service"
	"github.com/finzzup/portal-api/internal/infrastructure/config"
	mongostore "github.com/finzzup/portal-api/internal/infrastructure/db/mongo"
	redisstore "github.com/finzzup/portal-api/internal/infrastructure/db/redis"
	"github.com/finzzup/portal-api/internal/infrastructure/http/handlers"
	"github.com/finzzup/portal-api/pkg/logger"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(logger.Get())

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("portal"))

	// --- Dependencies ---
	clientRepo := mongostore.NewClientRepository(db)
	adminRepo := mongostore.NewAdminRepository(db)
	credentialRepo := mongostore.NewCredentialRepository(db)
	kpiRepo := mongostore.NewKPIRepository(db)
	actionRepo := mongostore.NewActionRepository(db)
	engagementRepo := mongostore.NewEngagementRepository(db)
	revoker := redisstore.NewRevocationStore(rdb)

	authService := service.NewAuthService(clientRepo, adminRepo, credentialRepo, revoker, cfg.JWTSecret, cfg.SessionTTL, logger.Get())
	portalService := service.NewPortalService(clientRepo, kpiRepo, actionRepo, engagementRepo, logger.Get())
	adminService := service.NewAdminService(clientRepo, kpiRepo, actionRepo, engagementRepo, logger.Get())

	authHandler := handler.NewAuthHandler(authService, cfg.ContactEmail)
	portalHandler := handler.NewPortalHandler(portalService)
	adminHandler := handler.NewAdminHandler(adminService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, revoker, logger.Get())

	// --- Auth routes (rate limited, brute force prevention) ---
	auth := e.Group("/auth", middleware.RateLimit(middleware.RateLimitConfig{
		Requests: cfg.RateLimit.Requests,
		Window:   cfg.RateLimit.Window,
		Burst:    cfg.RateLimit.Burst,
	}, logger.Get()))
	auth.POST("/invite", authHandler.CheckInvite)
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/admin/login", authHandler.AdminLogin)
	auth.GET("/session", authHandler.Session, authMiddleware)
	auth.POST("/logout", authHandler.Logout, authMiddleware)

	// --- Client portal ---
	portal := e.Group("/v1/portal", authMiddleware, middleware.RBAC(domain.RoleClient))
	portal.GET("/navigation", portalHandler.Navigation)
	portal.GET("/dashboard", portalHandler.Dashboard)
	portal.GET("/cashflow", portalHandler.Cashflow)
	portal.GET("/actions", portalHandler.Actions)
	portal.POST("/actions/:id/toggle", portalHandler.ToggleAction)
	portal.GET("/report", portalHandler.Report)
	portal.GET("/engagement", portalHandler.Engagement)

	// --- Admin console ---
	admin := e.Group("/v1/admin", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/clients", adminHandler.ListClients)
	admin.POST("/clients", adminHandler.CreateClient)
	admin.GET("/clients/:id/workspace", adminHandler.Workspace)
	admin.PUT("/clients/:id/kpis", adminHandler.SaveKPI)
	admin.POST("/clients/:id/actions", adminHandler.AddAction)
	admin.PUT("/clients/:id/engagement", adminHandler.SaveEngagement)
	admin.POST("/actions/:id/toggle", adminHandler.ToggleAction)
	admin.DELETE("/actions/:id", adminHandler.DeleteAction)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
