package routes

import (
	"coletaverde/internal/adapter/http/handlers"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addBillingRoutes(router *gin.Engine, paymentHandler *handlers.BillingPaymentHandler, authenticated gin.HandlerFunc) {
	billing := router.Group(PathBilling, authenticated)
	{
		// The use case checks that the caller authored the solicitation.
		billing.POST("/pay/:id", middleware.RequireRoles(entities.RoleUser, entities.RoleEnterprise, entities.RoleAdmin), paymentHandler.PayFinalValue)
		billing.GET("/payments/:id", paymentHandler.ListBySolicitation)
		billing.GET("/payment/:paymentId", paymentHandler.GetByID)
	}
}
