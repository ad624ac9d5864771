package routes

import (
	"mecanica_os/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServiceOrders = "/service-orders"
	PathWebhooks      = "/webhooks"
)

func addServiceOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.ServiceOrderHandler, queryHandler *handlers.OrderQueryHandler) {
	orders := rg.Group(PathServiceOrders)
	{
		orders.POST("", orderHandler.CreateOrder)
		orders.GET("/queue", queryHandler.ActiveQueue)
		orders.GET("/metrics", queryHandler.TimeMetrics)
		orders.GET("/lookup", orderHandler.PublicLookup)
		orders.GET("/:id", orderHandler.GetOrder)

		orders.PATCH("/:id/diagnosis", orderHandler.StartDiagnosis)
		orders.POST("/:id/services", orderHandler.AddService)
		orders.DELETE("/:id/services/:serviceId", orderHandler.RemoveService)
		orders.POST("/:id/items", orderHandler.AddItem)
		orders.DELETE("/:id/items/:itemId", orderHandler.RemoveItem)

		orders.POST("/:id/budget", orderHandler.GenerateBudget)
		orders.PATCH("/:id/budget/approve", orderHandler.ApproveBudget)
		orders.PATCH("/:id/budget/disapprove", orderHandler.DisapproveBudget)

		orders.PATCH("/:id/finalize", orderHandler.FinalizeExecution)
		orders.PATCH("/:id/deliver", orderHandler.Deliver)
		orders.PATCH("/:id/cancel", orderHandler.Cancel)
		orders.PATCH("/:id/status", orderHandler.SetStatus)
	}
}

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.SagaWebhookHandler) {
	webhooks := rg.Group(PathWebhooks)
	{
		webhooks.POST("/saga", webhookHandler.HandleSagaCallback)
	}
}
