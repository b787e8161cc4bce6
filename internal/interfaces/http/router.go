// Package http assembles the Gin engine: middleware, handler wiring and the
// route table.
package http

import (
	"github.com/gin-gonic/gin"

	"miniticker/internal/infrastructure/config"
	"miniticker/internal/interfaces/http/handlers"
	"miniticker/internal/interfaces/http/middleware"
	"miniticker/internal/shared/constants"
	"miniticker/internal/shared/logger"
)

type Router struct {
	engine *gin.Engine

	authMiddleware *middleware.AuthMiddleware

	authHandler        *handlers.AuthHandler
	ticketHandler      *handlers.TicketHandler
	areaHandler        *handlers.AreaHandler
	requestTypeHandler *handlers.RequestTypeHandler
	userHandler        *handlers.UserHandler
	activityHandler    *handlers.ActivityHandler

	logger logger.Interface
}

func NewRouter(
	authMiddleware *middleware.AuthMiddleware,
	authHandler *handlers.AuthHandler,
	ticketHandler *handlers.TicketHandler,
	areaHandler *handlers.AreaHandler,
	requestTypeHandler *handlers.RequestTypeHandler,
	userHandler *handlers.UserHandler,
	activityHandler *handlers.ActivityHandler,
) *Router {
	return &Router{
		engine:             gin.New(),
		authMiddleware:     authMiddleware,
		authHandler:        authHandler,
		ticketHandler:      ticketHandler,
		areaHandler:        areaHandler,
		requestTypeHandler: requestTypeHandler,
		userHandler:        userHandler,
		activityHandler:    activityHandler,
		logger:             logger.NewLogger(),
	}
}

// Engine exposes the configured engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) Run(addr string) error {
	r.logger.Infow("starting HTTP server", "addr", addr)
	return r.engine.Run(addr)
}

// SetupRoutes installs middleware and the route table.
func (r *Router) SetupRoutes(cfg *config.Config) {
	if cfg.Server.Mode == constants.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	registerValidations()

	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if cfg.Storage.BasePath != "" {
		r.engine.Static("/uploads", cfg.Storage.BasePath)
	}

	api := r.engine.Group("/api")

	r.setupAuthRoutes(api)
	r.setupTicketRoutes(api)
	r.setupAreaRoutes(api)
	r.setupRequestTypeRoutes(api)
	r.setupUserRoutes(api)
	r.setupActivityRoutes(api)
}

func (r *Router) setupAuthRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/refresh", r.authHandler.RefreshToken)
		auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
	}
}

func (r *Router) setupTicketRoutes(api *gin.RouterGroup) {
	tickets := api.Group("/tickets")
	tickets.Use(r.authMiddleware.RequireAuth())
	{
		tickets.POST("", r.ticketHandler.CreateTicket)
		tickets.GET("", r.ticketHandler.ListTickets)
		tickets.GET("/:id", r.ticketHandler.GetTicket)
		tickets.PUT("/:id", r.ticketHandler.UpdateTicket)
		tickets.PUT("/:id/status", r.ticketHandler.ChangeStatus)
		tickets.PUT("/:id/assignee", r.ticketHandler.AssignTicket)
		tickets.POST("/:id/comments", r.ticketHandler.AddComment)
	}
}

func (r *Router) setupAreaRoutes(api *gin.RouterGroup) {
	areas := api.Group("/areas")
	areas.Use(r.authMiddleware.RequireAuth())
	{
		areas.GET("", r.areaHandler.ListAreas)
		areas.POST("", r.areaHandler.CreateArea)
		areas.PUT("/:id", r.areaHandler.UpdateArea)
		areas.PUT("/:id/active", r.areaHandler.SetAreaActive)
		areas.DELETE("/:id", r.areaHandler.DeleteArea)
		areas.PUT("/:id/responsible", r.areaHandler.AssignResponsible)
		areas.DELETE("/:id/responsible/:user_id", r.areaHandler.RemoveResponsible)
	}
}

func (r *Router) setupRequestTypeRoutes(api *gin.RouterGroup) {
	types := api.Group("/request-types")
	types.Use(r.authMiddleware.RequireAuth())
	{
		types.GET("", r.requestTypeHandler.ListRequestTypes)
		types.POST("", r.requestTypeHandler.CreateRequestType)
		types.PUT("/:id", r.requestTypeHandler.UpdateRequestType)
		types.PUT("/:id/active", r.requestTypeHandler.SetRequestTypeActive)
		types.DELETE("/:id", r.requestTypeHandler.DeleteRequestType)
	}
}

func (r *Router) setupUserRoutes(api *gin.RouterGroup) {
	users := api.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("", r.userHandler.ListUsers)
		users.POST("", r.userHandler.CreateUser)
		users.PUT("/me/password", r.userHandler.ChangePassword)
		users.PUT("/:id", r.userHandler.UpdateProfile)
		users.PUT("/:id/role", r.userHandler.ChangeRole)
		users.PUT("/:id/active", r.userHandler.SetUserActive)
	}
}

func (r *Router) setupActivityRoutes(api *gin.RouterGroup) {
	activity := api.Group("/activity")
	activity.Use(r.authMiddleware.RequireAuth())
	{
		activity.GET("/me", r.activityHandler.PersonalFeed)
		activity.GET("/all", r.activityHandler.GlobalFeed)
	}
}
