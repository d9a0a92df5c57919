// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"referral/internal/delivery/http/middleware"
	"referral/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ReferralHandler *handler.ReferralHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	referralHandler *handler.ReferralHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		referralHandler: params.ReferralHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// User routes: signup and login are public.
	userGroup := e.Group("/users")
	{
		userGroup.POST("/signup", r.userHandler.Signup)
		userGroup.POST("/login", r.userHandler.Login)
	}

	// Referral code routes: lookups are public, mutations require a bearer token.
	codeGroup := e.Group("/referral_codes")
	{
		codeGroup.GET("/", r.referralHandler.Get)
		codeGroup.GET("/all_referrals/:uuid", r.referralHandler.AllReferrals)
		codeGroup.POST("/", r.referralHandler.Create, r.authMiddleware.Authenticate)
		codeGroup.DELETE("/:code", r.referralHandler.Delete, r.authMiddleware.Authenticate)
		codeGroup.POST("/become_referral", r.referralHandler.BecomeReferral, r.authMiddleware.Authenticate)
	}
}
