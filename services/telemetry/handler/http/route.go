package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecofleet/fleet-telemetry/internal/pkg/logger"
	"github.com/ecofleet/fleet-telemetry/internal/pkg/models"
	"github.com/ecofleet/fleet-telemetry/internal/utils"
	"github.com/ecofleet/fleet-telemetry/services/telemetry"
	"github.com/labstack/echo/v4"
)

const defaultNearbyRadiusKm = 5.0

// positionRequest is the body of a GPS fix report
type positionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// RouteHandler handles HTTP requests for routes and their live telemetry
type RouteHandler struct {
	telemetryUC telemetry.TelemetryUC
}

// NewRouteHandler creates a new route HTTP handler
func NewRouteHandler(telemetryUC telemetry.TelemetryUC) *RouteHandler {
	return &RouteHandler{
		telemetryUC: telemetryUC,
	}
}

// UpdatePosition applies a GPS fix to a route
func (h *RouteHandler) UpdatePosition(c echo.Context) error {
	routeID := c.Param("id")
	if routeID == "" {
		return utils.BadRequestResponse(c, "route id is required")
	}

	var req positionRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind position request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}
	if req.Latitude == nil || req.Longitude == nil {
		return utils.BadRequestResponse(c, "latitude and longitude are required")
	}

	route, err := h.telemetryUC.ApplyFix(c.Request().Context(), routeID, models.Fix{
		Latitude:  *req.Latitude,
		Longitude: *req.Longitude,
		Source:    models.FixSourceHTTP,
	})
	if err != nil {
		return h.failure(c, "Failed to apply fix", routeID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Position updated", route)
}

// GetPosition returns the last known position of a route
func (h *RouteHandler) GetPosition(c echo.Context) error {
	routeID := c.Param("id")

	pos, err := h.telemetryUC.GetLivePosition(c.Request().Context(), routeID)
	if err != nil {
		return h.failure(c, "Failed to get live position", routeID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", pos)
}

// CreateRoute plans a new route
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	var req models.RouteRequest
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind route request", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	route, err := h.telemetryUC.CreateRoute(c.Request().Context(), &req)
	if err != nil {
		return h.failure(c, "Failed to create route", "", err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Route created", route)
}

// ListRoutes lists routes, optionally filtered by vehicle_id
func (h *RouteHandler) ListRoutes(c echo.Context) error {
	routes, err := h.telemetryUC.ListRoutes(c.Request().Context(), c.QueryParam("vehicle_id"))
	if err != nil {
		return h.failure(c, "Failed to list routes", "", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", routes)
}

// GetRoute returns a route by id
func (h *RouteHandler) GetRoute(c echo.Context) error {
	routeID := c.Param("id")

	route, err := h.telemetryUC.GetRoute(c.Request().Context(), routeID)
	if err != nil {
		return h.failure(c, "Failed to get route", routeID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", route)
}

// UpdateRoute applies the generic route update
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	routeID := c.Param("id")

	var req models.RouteUpdate
	if err := c.Bind(&req); err != nil {
		logger.Warn("Failed to bind route update", logger.ErrorField(err))
		return utils.BadRequestResponse(c, "invalid request body")
	}

	route, err := h.telemetryUC.UpdateRoute(c.Request().Context(), routeID, req)
	if err != nil {
		return h.failure(c, "Failed to update route", routeID, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Route updated", route)
}

// DeleteRoute removes a route
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	routeID := c.Param("id")

	if err := h.telemetryUC.DeleteRoute(c.Request().Context(), routeID); err != nil {
		return h.failure(c, "Failed to delete route", routeID, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// FindNearbyRoutes finds routes whose live position is near a point
func (h *RouteHandler) FindNearbyRoutes(c echo.Context) error {
	latStr := c.QueryParam("lat")
	lngStr := c.QueryParam("lng")
	if latStr == "" || lngStr == "" {
		return utils.BadRequestResponse(c, "lat and lng are required")
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid latitude")
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "invalid longitude")
	}

	radius := defaultNearbyRadiusKm
	if radiusStr := c.QueryParam("radius"); radiusStr != "" {
		radius, err = strconv.ParseFloat(radiusStr, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "invalid radius")
		}
	}

	routes, err := h.telemetryUC.FindNearbyRoutes(c.Request().Context(), lat, lng, radius)
	if err != nil {
		return h.failure(c, "Failed to find nearby routes", "", err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "", routes)
}

// failure logs unexpected errors and maps the error to a response
func (h *RouteHandler) failure(c echo.Context, msg, routeID string, err error) error {
	switch {
	case errors.Is(err, models.ErrRouteNotFound), errors.Is(err, models.ErrNoPosition),
		errors.Is(err, models.ErrInvalidFix), errors.Is(err, models.ErrInvalidRoute),
		errors.Is(err, models.ErrInvalidQuery):
		logger.Debug(msg, logger.String("route_id", routeID), logger.ErrorField(err))
	default:
		logger.Error(msg, logger.String("route_id", routeID), logger.ErrorField(err))
	}
	return utils.DomainErrorResponse(c, err)
}
