// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"foodlink/internal/delivery/http/middleware"
	"foodlink/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers the router wires up, injected by Fx.
type RouterParams struct {
	fx.In

	DonationHandler     *handler.DonationHandler
	OrganizationHandler *handler.OrganizationHandler
	StatsHandler        *handler.StatsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	donationHandler     *handler.DonationHandler
	organizationHandler *handler.OrganizationHandler
	statsHandler        *handler.StatsHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		donationHandler:     params.DonationHandler,
		organizationHandler: params.OrganizationHandler,
		statsHandler:        params.StatsHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", handler.HealthCheck)
	api.GET("/stats", r.statsHandler.GetPlatformStats)

	ngoGroup := api.Group("/ngos")
	{
		ngoGroup.POST("/register", r.organizationHandler.Register)
		ngoGroup.POST("/login", r.organizationHandler.Login)
		ngoGroup.GET("", r.organizationHandler.ListOrganizations)
		ngoGroup.GET("/:id", r.organizationHandler.GetOrganization)
		ngoGroup.GET("/:id/stats", r.statsHandler.GetOrganizationStats)

		// Profile changes apply to the organization in the token.
		ngoGroup.PUT("/me", r.organizationHandler.UpdateOrganization, r.authMiddleware.Authenticate)
		ngoGroup.DELETE("/me", r.organizationHandler.DeleteOrganization, r.authMiddleware.Authenticate)
	}

	donationGroup := api.Group("/donations")
	{
		donationGroup.POST("", r.donationHandler.CreateDonation)
		donationGroup.GET("", r.donationHandler.ListDonations)
		donationGroup.GET("/:id", r.donationHandler.GetDonation)

		donationGroup.PUT("/:id/status", r.donationHandler.UpdateDonationStatus, r.authMiddleware.Authenticate)
		donationGroup.DELETE("/:id", r.donationHandler.DeleteDonation, r.authMiddleware.Authenticate)
		donationGroup.GET("/:id/qr", r.donationHandler.GetPickupQR, r.authMiddleware.Authenticate)
	}
}
