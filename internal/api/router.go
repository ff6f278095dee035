package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/yng-express/parcel-admin/docs"
	"github.com/yng-express/parcel-admin/internal/api/handler"
	"github.com/yng-express/parcel-admin/internal/api/middleware"
	"github.com/yng-express/parcel-admin/internal/core/domain"
	"github.com/yng-express/parcel-admin/internal/core/ports"
	"github.com/yng-express/parcel-admin/internal/core/service"
	mongodb "github.com/yng-express/parcel-admin/internal/infrastructure/db/mongo"
	redisdb "github.com/yng-express/parcel-admin/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, notifier ports.Notifier, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("parcel_admin"))

	// --- Repositories ---
	authRepo := mongodb.NewAuthRepository(db)
	customerRepo := mongodb.NewCustomerRepository(db)
	parcelRepo := mongodb.NewParcelRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	invoiceRepo := mongodb.NewInvoiceRepository(db)
	reportRepo := mongodb.NewReportRepository(db)

	// --- Services ---
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	customerService := service.NewCustomerService(customerRepo, parcelRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, parcelRepo, customerRepo, paymentRepo, notifier, log)
	parcelService := service.NewParcelService(parcelRepo, customerRepo, invoiceService, redisdb.NewScanDedup(rdb), notifier, log)
	paymentService := service.NewPaymentService(paymentRepo, parcelRepo, log)
	reportService := service.NewReportService(reportRepo, redisdb.NewReportCache(rdb), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	customerHandler := handler.NewCustomerHandler(customerService)
	parcelHandler := handler.NewParcelHandler(parcelService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	reportHandler := handler.NewReportHandler(reportService)

	auth := middleware.Auth(jwtSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	anyOperator := middleware.RBAC(domain.RoleAdmin, domain.RoleAgent)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/register", authHandler.Register, auth, adminOnly)

	// --- Customers ---
	customers := e.Group("/customers", auth, anyOperator)
	customers.GET("", customerHandler.List)
	customers.POST("", customerHandler.Create)
	customers.GET("/search/by-code", customerHandler.SearchByCode)
	customers.GET("/:id", customerHandler.Get)

	// --- Parcels ---
	parcels := e.Group("/parcels", auth, anyOperator)
	parcels.GET("", parcelHandler.List)
	parcels.POST("", parcelHandler.Create)
	parcels.GET("/tracking/:trackingNumber", parcelHandler.GetByTracking)
	parcels.GET("/:id", parcelHandler.Get)
	parcels.PATCH("/:id/status", parcelHandler.UpdateStatus)

	// --- Payments ---
	payments := e.Group("/payments", auth, anyOperator)
	payments.GET("", paymentHandler.List)
	payments.POST("", paymentHandler.Record)
	payments.GET("/:id/receipt", paymentHandler.Receipt)

	// --- Invoices ---
	invoices := e.Group("/invoices", auth, anyOperator)
	invoices.GET("", invoiceHandler.List)
	invoices.GET("/:id", invoiceHandler.Get)
	invoices.GET("/:id/download", invoiceHandler.Download)
	invoices.POST("/:id/send", invoiceHandler.Send)

	// --- Reports ---
	reports := e.Group("/reports", auth, anyOperator)
	reports.GET("/dashboard", reportHandler.Dashboard)
	reports.GET("/status-breakdown", reportHandler.StatusBreakdown)
	reports.GET("/revenue", reportHandler.Revenue)
	reports.GET("/customer-growth", reportHandler.CustomerGrowth)
	reports.GET("/shipping-volume", reportHandler.ShippingVolume)

	// --- Health probes, metrics, docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
