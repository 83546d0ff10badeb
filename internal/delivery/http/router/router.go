// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"aegis/internal/delivery/http/middleware"
	"aegis/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler          *handler.AuthHandler
	VerificationHandler  *handler.VerificationHandler
	PasswordResetHandler *handler.PasswordResetHandler
	AdminHandler         *handler.AdminHandler
	ActorMiddleware      *middleware.ActorMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler          *handler.AuthHandler
	verificationHandler  *handler.VerificationHandler
	passwordResetHandler *handler.PasswordResetHandler
	adminHandler         *handler.AdminHandler
	actorMiddleware      *middleware.ActorMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:          params.AuthHandler,
		verificationHandler:  params.VerificationHandler,
		passwordResetHandler: params.PasswordResetHandler,
		adminHandler:         params.AdminHandler,
		actorMiddleware:      params.ActorMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public authentication routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/verification/send", r.verificationHandler.SendCode)
		authGroup.POST("/verification/verify", r.verificationHandler.VerifyEmail)
		authGroup.POST("/password-reset/request-link", r.passwordResetHandler.RequestLink)
		authGroup.POST("/password-reset/reset", r.passwordResetHandler.ResetWithToken)
		authGroup.POST("/password-reset/request-code", r.passwordResetHandler.RequestCode)
		authGroup.POST("/password-reset/reset-with-code", r.passwordResetHandler.ResetWithCode)
	}

	// Self-service routes that require a resolved actor
	accountGroup := e.Group("/account")
	accountGroup.Use(r.actorMiddleware.RequireActor)
	{
		accountGroup.GET("/me", r.authHandler.GetCurrent)
		accountGroup.POST("/logout", r.authHandler.Logout)
		accountGroup.PUT("/password", r.authHandler.ChangePassword)
		accountGroup.PUT("/email", r.authHandler.ChangeEmail)
		accountGroup.DELETE("", r.authHandler.DeleteAccount)
		accountGroup.GET("/activity", r.authHandler.GetActivity)
	}

	// Privileged management routes; role checks happen in the usecases
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.actorMiddleware.RequireActor)
	{
		adminGroup.POST("/admins", r.adminHandler.CreateAdmin)
		adminGroup.GET("/admins", r.adminHandler.ListAdmins)
		adminGroup.GET("/admins/:id", r.adminHandler.GetAdmin)
		adminGroup.PUT("/admins/:id/status", r.adminHandler.UpdateAdminStatus)
		adminGroup.PUT("/admins/:id/role", r.adminHandler.UpdateAdminRole)
		adminGroup.PUT("/admins/:id/password", r.adminHandler.ForceResetAdminPassword)
		adminGroup.GET("/users", r.adminHandler.SearchUsers)
		adminGroup.PUT("/users/:id/status", r.adminHandler.UpdateUserStatus)
		adminGroup.GET("/dashboard", r.adminHandler.GetDashboardStats)
		adminGroup.GET("/audit-logs", r.adminHandler.GetAuditLogs)
	}
}
