// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"nudge/internal/delivery/api/middleware"
	"nudge/internal/delivery/api/router/handler"
	"nudge/internal/domain/entity"
	"nudge/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DispatchHandler     *handler.DispatchHandler
	SubscriptionHandler *handler.SubscriptionHandler
	RuleHandler         *handler.RuleHandler
	AnnouncementHandler *handler.AnnouncementHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry
}

// router holds all the handlers that need to be registered.
type router struct {
	dispatchHandler     *handler.DispatchHandler
	subscriptionHandler *handler.SubscriptionHandler
	ruleHandler         *handler.RuleHandler
	announcementHandler *handler.AnnouncementHandler
	authMiddleware      *middleware.AuthMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		dispatchHandler:     params.DispatchHandler,
		subscriptionHandler: params.SubscriptionHandler,
		ruleHandler:         params.RuleHandler,
		announcementHandler: params.AnnouncementHandler,
		authMiddleware:      params.AuthMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler(r.registry)))

	apiV1 := e.Group("/api/v1")

	// Browsers fetch the VAPID key before the user signs in
	apiV1.GET("/push/vapid-public-key", r.subscriptionHandler.GetVAPIDPublicKey)

	authed := apiV1.Group("")
	authed.Use(r.authMiddleware.Authenticate)

	// Administrative dispatch trigger and history
	adminGroup := authed.Group("")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.POST("/dispatch", r.dispatchHandler.Dispatch)
		adminGroup.GET("/dispatches", r.dispatchHandler.ListDispatches)
	}

	// Device subscriptions of the caller
	pushGroup := authed.Group("/push")
	{
		pushGroup.POST("/subscriptions", r.subscriptionHandler.Subscribe)
		pushGroup.GET("/subscriptions", r.subscriptionHandler.ListSubscriptions)
		pushGroup.DELETE("/subscriptions", r.subscriptionHandler.Unsubscribe)
		pushGroup.GET("/preference", r.subscriptionHandler.GetPreference)
		pushGroup.PUT("/preference", r.subscriptionHandler.SetPreference)
		pushGroup.POST("/test", r.subscriptionHandler.SendTest)
	}

	// Coach-authored rules and announcements
	coachGroup := authed.Group("")
	coachGroup.Use(r.authMiddleware.RequireRole(entity.RoleCoach, entity.RoleAdmin))
	{
		coachGroup.POST("/rules", r.ruleHandler.CreateRule)
		coachGroup.GET("/rules", r.ruleHandler.ListRules)
		coachGroup.PUT("/rules/:id", r.ruleHandler.UpdateRule)
		coachGroup.DELETE("/rules/:id", r.ruleHandler.DeleteRule)
		coachGroup.POST("/announcements", r.announcementHandler.QueueAnnouncement)
	}
}
