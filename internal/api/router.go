package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/springcrm/crm-api/docs"
	"github.com/springcrm/crm-api/internal/api/handler"
	"github.com/springcrm/crm-api/internal/api/middleware"
	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// Deps carries everything the HTTP layer needs. Services are built by the
// caller so that tests can hand in stubs.
type Deps struct {
	Log       zerolog.Logger
	Tokens    ports.TokenVerifier
	Register  ports.RegisterService
	Login     ports.LoginService
	Profiles  ports.ProfileService
	Accounts  ports.AccountAdminService
	Orgs      ports.OrganizationService
	Clients   ports.ClientService
	Txs       ports.TransactionService
	Readiness map[string]handler.Pinger
	// Metrics enables the Prometheus middleware and the /metrics route.
	// Left off in tests so the default registry is not registered twice.
	Metrics bool
}

// NewRouter builds and returns the Echo instance with all routes registered.
//
// Route classes:
//
//	public         /api/v1/auth/*, /health*, /metrics, /swagger/*
//	authenticated  /api/v1/user/*, /api/v1/organization/**
//	ADMIN          /api/v1/admin/**
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	if d.Metrics {
		e.Use(echoprometheus.NewMiddleware("crm"))
	}
	e.Use(middleware.Authenticate(d.Tokens))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Register, d.Login)
	userHandler := handler.NewUserHandler(d.Profiles)
	adminHandler := handler.NewAdminHandler(d.Accounts)
	orgHandler := handler.NewOrganizationHandler(d.Orgs)
	clientHandler := handler.NewClientHandler(d.Clients)
	txHandler := handler.NewTransactionHandler(d.Txs)

	v1 := e.Group("/api/v1")

	// --- Public ---
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// --- Authenticated ---
	user := v1.Group("/user", middleware.RequireAuthenticated())
	user.GET("/me", userHandler.Me)

	orgs := v1.Group("/organization", middleware.RequireAuthenticated())
	orgs.POST("", orgHandler.Create)
	orgs.GET("", orgHandler.List)
	orgs.PUT("/:organizationID", orgHandler.Rename)
	orgs.DELETE("/:organizationID", orgHandler.Delete)

	clients := orgs.Group("/:organizationID/client")
	clients.POST("", clientHandler.Create)
	clients.GET("", clientHandler.List)
	clients.PUT("/:id", clientHandler.Update)
	clients.DELETE("/:id", clientHandler.Delete)

	txs := orgs.Group("/:organizationID/transaction")
	txs.POST("", txHandler.Create)
	txs.GET("", txHandler.List)
	txs.PUT("/:id", txHandler.Update)
	txs.DELETE("/:id", txHandler.Delete)

	// --- ADMIN ---
	admin := v1.Group("/admin", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/find/id/:id", adminHandler.FindByID)
	admin.GET("/find/email/:email", adminHandler.FindByEmail)
	admin.GET("/find/all", adminHandler.FindAll)
	admin.DELETE("/delete/id/:id", adminHandler.DeleteByID)
	admin.DELETE("/delete/email/:email", adminHandler.DeleteByEmail)
	admin.PATCH("/account/:id/active", adminHandler.SetActive)
	admin.PATCH("/account/:id/role", adminHandler.SetRole)

	// --- Operations (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(d.Readiness)

	e.GET("/health", healthHandler.Liveness)           // liveness: is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness: are dependencies up?
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if d.Metrics {
		e.GET("/metrics", echoprometheus.NewHandler())
	}

	return e
}
