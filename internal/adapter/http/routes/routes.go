package routes

import (
	"net/http"

	_ "coletaverde/docs" // swagger docs registration
	"coletaverde/internal/adapter/http/handlers"
	"coletaverde/internal/adapter/http/middleware"
	"coletaverde/internal/infrastructure/config"
	"coletaverde/internal/usecase"
	"coletaverde/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler mounted by New.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Solicitation *handlers.SolicitationHandler
	Chat         *handlers.ChatHandler
	Events       *handlers.EventsHandler
	Payment      *handlers.BillingPaymentHandler
}

// New builds the engine: global middleware, public routes and the
// authenticated groups. limiter may be nil.
func New(cfg config.Config, h Handlers, auth usecase.IAuthUseCase, limiter *middleware.RateLimiter, logger logrus.FieldLogger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, limiter, logger)

	router.Static(cfg.MediaBaseURL, cfg.UploadsDir)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	addPingRoutes(router)

	authenticated := middleware.Authenticate(auth)
	addAuthRoutes(router, h.Auth, authenticated)
	addUserRoutes(router, h.User, authenticated)
	addSolicitationRoutes(router, h.Solicitation, authenticated)
	addChatRoutes(router, h.Chat, h.Events, authenticated)
	addBillingRoutes(router, h.Payment, authenticated)

	return router
}

func setMiddlewares(router *gin.Engine, cfg config.Config, limiter *middleware.RateLimiter, logger logrus.FieldLogger) {
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(cors.New(corsConfig(cfg)))
	if limiter != nil {
		router.Use(limiter.Middleware)
	}
}

// corsConfig allows every origin outside production. In production only the
// configured allowlist is accepted, and nothing when it is empty.
func corsConfig(cfg config.Config) cors.Config {
	c := cors.DefaultConfig()
	switch {
	case !cfg.IsProduction():
		c.AllowAllOrigins = true
	case len(cfg.CORSAllowedOrigins) > 0:
		c.AllowOrigins = cfg.CORSAllowedOrigins
	default:
		c.AllowOriginFunc = func(string) bool { return false }
	}
	c.AddAllowMethods(http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions)
	c.AddAllowHeaders("Origin", "Content-Type", "Authorization")
	c.AddExposeHeaders("Content-Length", "X-Requests-Limit")
	c.AllowCredentials = true
	return c
}

func addPingRoutes(router *gin.Engine) {
	router.GET(PathPing, func(c *gin.Context) {
		c.JSON(http.StatusOK, pkg.OK(http.StatusOK, "pong"))
	})
}
