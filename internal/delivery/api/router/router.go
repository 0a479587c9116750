// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"locator/config"
	"locator/internal/delivery/api/middleware"
	"locator/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	MapHandler        *handler.MapHandler
	StoreHandler      *handler.StoreHandler
	FlavorHandler     *handler.FlavorHandler
	ConnectionHandler *handler.ConnectionHandler
	AdminHandler      *handler.AdminHandler
	TileHandler       *handler.TileHandler
	TestHandler       *handler.TestHandler
	AdminMiddleware   *middleware.AdminMiddleware
	Config            *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	mapHandler        *handler.MapHandler
	storeHandler      *handler.StoreHandler
	flavorHandler     *handler.FlavorHandler
	connectionHandler *handler.ConnectionHandler
	adminHandler      *handler.AdminHandler
	tileHandler       *handler.TileHandler
	testHandler       *handler.TestHandler
	adminMiddleware   *middleware.AdminMiddleware
	config            *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		mapHandler:        params.MapHandler,
		storeHandler:      params.StoreHandler,
		flavorHandler:     params.FlavorHandler,
		connectionHandler: params.ConnectionHandler,
		adminHandler:      params.AdminHandler,
		tileHandler:       params.TileHandler,
		testHandler:       params.TestHandler,
		adminMiddleware:   params.AdminMiddleware,
		config:            params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	// Map viewport routes
	apiV1.GET("/stores-in-bounds", r.mapHandler.StoresInBounds)
	apiV1.GET("/grid/cell-size", r.mapHandler.CellSize)

	// Store routes
	storesGroup := apiV1.Group("/stores")
	{
		storesGroup.GET("/:id", r.storeHandler.GetStore)
		storesGroup.GET("/:id/qr", r.storeHandler.GetStoreQRCode)
		storesGroup.PUT("/:id/flavors/:flavor", r.storeHandler.SetAvailability)
	}

	// Flavor catalog routes
	flavorsGroup := apiV1.Group("/flavors")
	{
		flavorsGroup.GET("", r.flavorHandler.ListFlavors)
		flavorsGroup.POST("/:name/subscribe", r.flavorHandler.SubscribeRestock)
	}

	apiV1.POST("/connections", r.connectionHandler.RecordConnection)

	// Basemap tiles
	apiV1.GET("/tiles/:tileset/:z/:x/:y", r.tileHandler.GetTile)

	// Admin routes guarded by the shared password
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.adminMiddleware.RequireAdmin)
	{
		adminGroup.GET("/update-logs", r.adminHandler.ListUpdateLogs)
		adminGroup.GET("/connections", r.adminHandler.GetConnections)
		adminGroup.GET("/connection-stats", r.adminHandler.GetConnectionStats)
	}
}

func (r *router) RegisterTestRoutes(e *echo.Echo) {
	// Test routes - only enabled when configured
	if r.config.TestRoutes != nil && r.config.TestRoutes.Enabled {
		testGroup := e.Group("/test")
		testGroup.GET("/public", r.testHandler.TestPublicEndpoint)

		testGroup.Use(r.adminMiddleware.RequireAdmin)
		{
			testGroup.GET("/admin", r.testHandler.TestAdminMiddleware)
		}
	}
}
