package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nafru/exportdesk/internal/pkg/authz"
	"github.com/nafru/exportdesk/internal/server/http/handlers"
	"github.com/nafru/exportdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ExportFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	shipmentHandler := handlers.NewShipmentHandler(facade)
	documentHandler := handlers.NewDocumentHandler(facade)
	productHandler := handlers.NewProductHandler(facade)

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/customers", middleware.RequireAction(authz.ActionCreateCustomer), customerHandler.Create)
	protected.GET("/customers", middleware.RequireAction(authz.ActionListCustomers), customerHandler.List)
	protected.POST("/orders", middleware.RequireAction(authz.ActionCreateOrder), orderHandler.Create)
	protected.GET("/orders", middleware.RequireAction(authz.ActionListOrders), orderHandler.List)
	protected.POST("/shipments", middleware.RequireAction(authz.ActionCreateShipment), shipmentHandler.Create)
	protected.GET("/shipments", middleware.RequireAction(authz.ActionListShipments), shipmentHandler.List)
	protected.POST("/documents", middleware.RequireAction(authz.ActionGenerateDocument), documentHandler.Generate)
	protected.GET("/documents", middleware.RequireAction(authz.ActionListDocuments), documentHandler.List)
	protected.POST("/products", middleware.RequireAction(authz.ActionCreateProduct), productHandler.Create)
	protected.GET("/products", middleware.RequireAction(authz.ActionListProducts), productHandler.List)

	return engine
}
