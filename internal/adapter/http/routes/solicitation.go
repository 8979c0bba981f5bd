package routes

import (
	"coletaverde/internal/adapter/http/handlers"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addSolicitationRoutes(router *gin.Engine, h *handlers.SolicitationHandler, authenticated gin.HandlerFunc) {
	solicitation := router.Group(PathSolicitation, authenticated)
	{
		solicitation.POST("/create", middleware.RequireRoles(entities.RoleEnterprise, entities.RoleAdmin), h.Create)
		solicitation.PUT("/accept", middleware.RequireRoles(entities.RoleEmployee, entities.RoleAdmin), h.Accept)
		solicitation.PUT("/value", h.SuggestValue)
		solicitation.PUT("/consent", h.Consent)
		solicitation.PUT("/cancel/:id", h.Cancel)
		solicitation.PUT("/finish/:id", middleware.RequireRoles(entities.RoleEmployee), h.Finish)
		solicitation.GET("/id/:id", h.GetByID)
		solicitation.GET("/id/:id/me", h.GetMineByID)
		solicitation.GET("/all", h.List)
		solicitation.GET("/all/me", h.ListMine)
	}
}
