// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"otobiznes/internal/delivery/http/middleware"
	"otobiznes/internal/delivery/http/router/handler"
	"otobiznes/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler  *handler.CatalogHandler
	AuthHandler     *handler.AuthHandler
	ProfileHandler  *handler.ProfileHandler
	AdminHandler    *handler.AdminHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalog *handler.CatalogHandler
	auth    *handler.AuthHandler
	profile *handler.ProfileHandler
	admin   *handler.AdminHandler
	guard   *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalog: params.CatalogHandler,
		auth:    params.AuthHandler,
		profile: params.ProfileHandler,
		admin:   params.AdminHandler,
		guard:   params.GuardMiddleware,
	}
}

// RegisterRoutes sets up all the page routes of the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", r.catalog.Home)
	e.GET("/ads/:id", r.catalog.Ad)
	e.POST("/ads/:id/reviews", r.catalog.SubmitReview)
	e.GET("/businesses/:id", r.catalog.Business)
	e.GET("/businesses/:id/qr.png", r.catalog.BusinessQR)

	// Guest pages
	e.GET("/login", r.auth.LoginPage, r.guard.GuestOnly)
	e.POST("/login", r.auth.Login, r.guard.GuestOnly)
	e.GET("/register", r.auth.RegisterPage, r.guard.GuestOnly)
	e.POST("/register", r.auth.Register, r.guard.GuestOnly)

	e.POST("/logout", r.auth.Logout)

	// Any signed-in role sees the profile, business mutations need an owner or an admin
	e.GET("/profile", r.profile.Profile, r.guard.Require())
	ownerGroup := e.Group("/profile", r.guard.Require(entity.RoleBusinessOwner, entity.RoleAdmin))
	{
		ownerGroup.POST("/businesses", r.profile.CreateBusiness)
		ownerGroup.POST("/businesses/:id/delete", r.profile.DeleteBusiness)
		ownerGroup.POST("/ads", r.profile.CreateAd)
		ownerGroup.POST("/ads/:id/delete", r.profile.DeleteAd)
	}

	adminGroup := e.Group("/admin", r.guard.Require(entity.RoleAdmin))
	{
		adminGroup.GET("", r.admin.Dashboard)
		adminGroup.POST("/users/:id/role", r.admin.ChangeRole)
		adminGroup.POST("/users/:id/delete", r.admin.DeleteUser)
		adminGroup.POST("/ads/:id/approve", r.admin.ApproveAd)
		adminGroup.POST("/categories", r.admin.CreateCategory)
		adminGroup.POST("/categories/:id/delete", r.admin.DeleteCategory)
	}
}
