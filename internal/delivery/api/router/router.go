// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"acai/internal/delivery/api/middleware"
	"acai/internal/delivery/api/router/handler"
	"acai/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	IdentityHandler *handler.IdentityHandler
	StoreHandler    *handler.StoreHandler
	ApprovalHandler *handler.ApprovalHandler
	CatalogHandler  *handler.CatalogHandler
	BowlHandler     *handler.BowlHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	identityHandler *handler.IdentityHandler
	storeHandler    *handler.StoreHandler
	approvalHandler *handler.ApprovalHandler
	catalogHandler  *handler.CatalogHandler
	bowlHandler     *handler.BowlHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		identityHandler: params.IdentityHandler,
		storeHandler:    params.StoreHandler,
		approvalHandler: params.ApprovalHandler,
		catalogHandler:  params.CatalogHandler,
		bowlHandler:     params.BowlHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Mock identity
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.identityHandler.Login)
		authGroup.POST("/role", r.identityHandler.AssignRole, r.authMiddleware.Authenticate)
	}

	// Public storefront
	e.GET("/catalog", r.catalogHandler.ListCatalog)
	storesGroup := e.Group("/stores")
	{
		storesGroup.GET("", r.storeHandler.ListStores)
		storesGroup.GET("/:id", r.storeHandler.GetStore, r.authMiddleware.OptionalAuthenticate)
		storesGroup.GET("/:id/qr", r.storeHandler.StoreQR)
	}

	// Bowl builder sessions are anonymous and addressed by id
	bowlsGroup := e.Group("/bowls")
	{
		bowlsGroup.POST("/quote", r.bowlHandler.Quote)
		bowlsGroup.POST("", r.bowlHandler.StartBowl)
		bowlsGroup.GET("/:id", r.bowlHandler.GetBowl)
		bowlsGroup.POST("/:id/items", r.bowlHandler.AddItem)
		bowlsGroup.DELETE("/:id/items/:index", r.bowlHandler.RemoveItem)
		bowlsGroup.DELETE("/:id", r.bowlHandler.DiscardBowl)
	}

	// The view router also answers anonymous visitors
	e.GET("/api/v1/me/view", r.identityHandler.CurrentView, r.authMiddleware.OptionalAuthenticate)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)

	// Store owners
	ownerGroup := apiV1.Group("/stores")
	ownerGroup.Use(r.authMiddleware.RequireRole(entity.RoleStore))
	{
		ownerGroup.POST("", r.storeHandler.CreateStore)
		ownerGroup.PUT("/:id/location", r.storeHandler.SetStoreLocation)
	}

	// Admin dashboard
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/stores/pending", r.approvalHandler.ListPending)
		adminGroup.POST("/stores/:id/decision", r.approvalHandler.Decide)
		adminGroup.POST("/catalog", r.catalogHandler.AddCatalogItem)
	}
}
