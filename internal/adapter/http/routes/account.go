package routes

import (
	"coletaverde/internal/adapter/http/handlers"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

func addAuthRoutes(router *gin.Engine, h *handlers.AuthHandler, authenticated gin.HandlerFunc) {
	auth := router.Group(PathAuth)
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/check", authenticated, h.Check)
		auth.GET("/verify-email/:token", h.VerifyEmail)
	}
}

func addUserRoutes(router *gin.Engine, h *handlers.UserHandler, authenticated gin.HandlerFunc) {
	user := router.Group(PathUser, authenticated)
	{
		user.GET("/me", h.Me)
		user.PUT("/me", h.UpdateMe)
		user.GET("/id/:id", h.ByID)
	}

	address := router.Group(PathAddress, authenticated)
	{
		address.POST("/create", middleware.RequireRoles(entities.RoleUser, entities.RoleEnterprise, entities.RoleAdmin), h.CreateAddress)
		address.GET("/all", h.ListAddresses)
		address.GET("/index/:index", h.AddressByIndex)
		address.DELETE("/delete/index/:index", h.DeleteAddress)
	}
}

func addChatRoutes(router *gin.Engine, chat *handlers.ChatHandler, events *handlers.EventsHandler, authenticated gin.HandlerFunc) {
	group := router.Group(PathChat, authenticated)
	{
		group.POST("/send", chat.Send)
		group.GET("/:userId", chat.Fetch)
	}
	router.GET(PathEvents, authenticated, events.Stream)
}
