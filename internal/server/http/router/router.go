package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/handlers"
	"github.com/SeyithanDilek/baskiliisler-backend-sub000/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.WorkflowFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	brandHandler := handlers.NewBrandHandler(facade)
	processHandler := handlers.NewProcessHandler(facade)
	quoteHandler := handlers.NewQuoteHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	// Writes carry X-Actor-ID for the audit trail; reads stay anonymous.
	actor := middleware.RequireActor()

	brands := api.Group("/brands")
	brands.POST("", actor, brandHandler.Create)
	brands.GET("/:brandID", brandHandler.Get)
	brands.DELETE("/:brandID", actor, brandHandler.Delete)
	brands.GET("/:brandID/process", processHandler.Status)
	brands.GET("/:brandID/process/history", processHandler.History)
	brands.POST("/:brandID/process/sample-left", actor, processHandler.SampleLeft)
	brands.POST("/:brandID/process/cancel", actor, processHandler.Cancel)
	brands.POST("/:brandID/process/transition", actor, processHandler.Transition)
	brands.GET("/:brandID/quotes", quoteHandler.ListByBrand)
	brands.GET("/:brandID/orders", orderHandler.ListByBrand)

	quotes := api.Group("/quotes")
	quotes.POST("", actor, quoteHandler.Create)
	quotes.GET("/:quoteID", quoteHandler.Get)
	quotes.PUT("/:quoteID", actor, quoteHandler.Update)
	quotes.POST("/:quoteID/accept", actor, quoteHandler.Accept)
	quotes.POST("/:quoteID/decline", actor, quoteHandler.Decline)
	quotes.POST("/:quoteID/expire", actor, quoteHandler.Expire)

	orders := api.Group("/orders")
	orders.GET("/:orderID", orderHandler.Get)
	orders.POST("/:orderID/factory", actor, orderHandler.AssignFactory)
	orders.POST("/:orderID/status", actor, orderHandler.UpdateStatus)
	orders.POST("/:orderID/items/:itemID/status", actor, orderHandler.UpdateItemStatus)

	return engine
}
