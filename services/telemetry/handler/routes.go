package handler

import (
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
	httpHandler "github.com/ecofleet/fleet-telemetry/services/telemetry/handler/http"
	"github.com/labstack/echo/v4"
)

// HTTPHandler combines all HTTP handlers of the telemetry service
type HTTPHandler struct {
	routeHTTP     *httpHandler.RouteHandler
	fixMiddleware []echo.MiddlewareFunc
}

// NewHTTPHandler creates a new combined handler
func NewHTTPHandler(telemetryUC telemetry.TelemetryUC) *HTTPHandler {
	return &HTTPHandler{
		routeHTTP: httpHandler.NewRouteHandler(telemetryUC),
	}
}

// Use adds middleware to the position report endpoints only
func (h *HTTPHandler) Use(m ...echo.MiddlewareFunc) {
	h.fixMiddleware = append(h.fixMiddleware, m...)
}

// RegisterRoutes registers all HTTP routes
func (h *HTTPHandler) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	routes := api.Group("/routes")
	routes.POST("", h.routeHTTP.CreateRoute)
	routes.GET("", h.routeHTTP.ListRoutes)
	routes.GET("/nearby", h.routeHTTP.FindNearbyRoutes)
	routes.GET("/:id", h.routeHTTP.GetRoute)
	routes.PUT("/:id", h.routeHTTP.UpdateRoute)
	routes.DELETE("/:id", h.routeHTTP.DeleteRoute)

	// Live telemetry
	routes.PUT("/:id/position", h.routeHTTP.UpdatePosition, h.fixMiddleware...)
	routes.POST("/:id/position", h.routeHTTP.UpdatePosition, h.fixMiddleware...)
	routes.GET("/:id/position", h.routeHTTP.GetPosition)
}
