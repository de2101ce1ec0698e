package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/quickbite/orderservice/internal/server/http/handlers"
	"github.com/quickbite/orderservice/internal/server/http/middleware"
)

// Setup configures the gin router with handlers and middleware.
func Setup(facade handlers.OrderFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")
	api.GET("/users/:userId/orders", orderHandler.ListByUser)
	api.GET("/restaurants/:restaurantId/orders", orderHandler.ListByRestaurant)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("/:orderId", orderHandler.Get)
	orders.PUT("/:orderId/status", orderHandler.UpdateStatus)
	orders.POST("/:orderId/cancel", orderHandler.Cancel)
	orders.POST("/:orderId/items", orderHandler.AddItem)
	orders.PUT("/:orderId/items/:foodItemId", orderHandler.UpdateQuantity)
	orders.DELETE("/:orderId/items/:foodItemId", orderHandler.RemoveItem)
	orders.DELETE("/:orderId", orderHandler.Delete)

	return engine
}
