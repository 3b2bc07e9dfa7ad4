package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/cleanvillage/sanitation-system/docs"
	"github.com/cleanvillage/sanitation-system/internal/api/handler"
	"github.com/cleanvillage/sanitation-system/internal/api/middleware"
	"github.com/cleanvillage/sanitation-system/internal/core/domain"
	"github.com/cleanvillage/sanitation-system/internal/core/ports"
)

// Dependencies carries everything the router needs. Services are built in
// main because the storage backend is selected there; Mongo and Redis are
// nil when the file backend is in use and only feed the readiness probe.
type Dependencies struct {
	Identity      ports.IdentityService
	Complaints    ports.ComplaintService
	Notifications handler.NotificationLog
	JWTSecret     string
	TokenTTL      time.Duration
	Mongo         *mongo.Database
	Redis         *redis.Client
	Log           zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("cleanvillage"))

	// --- Dependencies ---
	authHandler := handler.NewAuthHandler(deps.Identity, deps.JWTSecret, deps.TokenTTL)
	complaintHandler := handler.NewComplaintHandler(deps.Complaints)
	notificationHandler := handler.NewNotificationHandler(deps.Notifications)
	hygieneHandler := handler.NewHygieneHandler()
	authMiddleware := middleware.Auth(deps.JWTSecret)
	officialOnly := middleware.RBAC(domain.RoleOfficial)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)
	e.GET("/auth/me", authHandler.Me, authMiddleware)

	// --- Complaint routes ---
	v1 := e.Group("/v1")
	v1.GET("/hygiene", hygieneHandler.Get)

	complaints := v1.Group("/complaints", authMiddleware)
	complaints.POST("", complaintHandler.Submit)
	complaints.GET("", complaintHandler.List)
	complaints.GET("/stats", complaintHandler.Stats)
	complaints.GET("/:id", complaintHandler.Get)
	complaints.PATCH("/:id/status", complaintHandler.UpdateStatus, officialOnly)

	v1.GET("/notifications", notificationHandler.List, authMiddleware, officialOnly)

	// --- Observability ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	return e
}
