package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/rutasur/tour_backoffice_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// fleetHandler handles HTTP requests for vehicles and destinations.
type fleetHandler struct {
	vehicleService     portssvc.VehicleSvcFacade
	destinationService portssvc.DestinationSvcFacade
}

func newFleetHandler(vs portssvc.VehicleSvcFacade, ds portssvc.DestinationSvcFacade) *fleetHandler {
	return &fleetHandler{
		vehicleService:     vs,
		destinationService: ds,
	}
}

// registerFleetRoutes registers routes for vehicles and destinations.
func registerFleetRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade, destinationService portssvc.DestinationSvcFacade) {
	h := newFleetHandler(vehicleService, destinationService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deleteVehicle)
	}

	destinations := rg.Group("/destinations")
	{
		destinations.POST("", h.createDestination)
		destinations.GET("", h.listDestinations)
		destinations.GET("/:id", h.getDestination)
		destinations.PUT("/:id", h.updateDestination)
	}
}

// createVehicle godoc
// @Summary Add a fleet vehicle
// @Tags fleet
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create vehicle"
// @Router /vehicles [post]
func (h *fleetHandler) createVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create vehicle", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vehicle"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// listVehicles godoc
// @Summary List fleet vehicles
// @Tags fleet
// @Produce  json
// @Success 200 {array} dto.VehicleResponse
// @Failure 500 {object} map[string]string "Failed to list vehicles"
// @Router /vehicles [get]
func (h *fleetHandler) listVehicles(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list vehicles", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vehicles"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListVehicleResponse(vehicles))
}

// getVehicle godoc
// @Summary Get a fleet vehicle
// @Tags fleet
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 200 {object} dto.VehicleResponse
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to retrieve vehicle"
// @Router /vehicles/{id} [get]
func (h *fleetHandler) getVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("id")

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			logger.Error("Failed to get vehicle", slog.String("error", err.Error()), slog.String("vehicle_id", vehicleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve vehicle"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// updateVehicle godoc
// @Summary Update a fleet vehicle
// @Tags fleet
// @Accept  json
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Param   vehicle body dto.UpdateVehicleRequest true "Fields to update"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to update vehicle"
// @Router /vehicles/{id} [put]
func (h *fleetHandler) updateVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("id")

	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), vehicleID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			logger.Error("Failed to update vehicle", slog.String("error", err.Error()), slog.String("vehicle_id", vehicleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update vehicle"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// deleteVehicle godoc
// @Summary Remove a fleet vehicle
// @Tags fleet
// @Produce  json
// @Param   id path string true "Vehicle ID"
// @Success 204 "Vehicle deleted"
// @Failure 404 {object} map[string]string "Vehicle not found"
// @Failure 500 {object} map[string]string "Failed to delete vehicle"
// @Router /vehicles/{id} [delete]
func (h *fleetHandler) deleteVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	vehicleID := c.Param("id")

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
		} else {
			logger.Error("Failed to delete vehicle", slog.String("error", err.Error()), slog.String("vehicle_id", vehicleID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete vehicle"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// createDestination godoc
// @Summary Add a destination
// @Tags fleet
// @Accept  json
// @Produce  json
// @Param   destination body dto.CreateDestinationRequest true "Destination details"
// @Success 201 {object} dto.DestinationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to create destination"
// @Router /destinations [post]
func (h *fleetHandler) createDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	destination, err := h.destinationService.CreateDestination(c.Request.Context(), req, creatorUserID)
	if err != nil {
		logger.Error("Failed to create destination", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create destination"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDestinationResponse(destination))
}

// listDestinations godoc
// @Summary List destinations
// @Tags fleet
// @Produce  json
// @Success 200 {array} dto.DestinationResponse
// @Failure 500 {object} map[string]string "Failed to list destinations"
// @Router /destinations [get]
func (h *fleetHandler) listDestinations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	destinations, err := h.destinationService.ListDestinations(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list destinations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list destinations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDestinationResponse(destinations))
}

// getDestination godoc
// @Summary Get a destination
// @Tags fleet
// @Produce  json
// @Param   id path string true "Destination ID"
// @Success 200 {object} dto.DestinationResponse
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Failed to retrieve destination"
// @Router /destinations/{id} [get]
func (h *fleetHandler) getDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	destinationID := c.Param("id")

	destination, err := h.destinationService.GetDestination(c.Request.Context(), destinationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		} else {
			logger.Error("Failed to get destination", slog.String("error", err.Error()), slog.String("destination_id", destinationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve destination"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDestinationResponse(destination))
}

// updateDestination godoc
// @Summary Update a destination
// @Tags fleet
// @Accept  json
// @Produce  json
// @Param   id path string true "Destination ID"
// @Param   destination body dto.UpdateDestinationRequest true "Fields to update"
// @Success 200 {object} dto.DestinationResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Destination not found"
// @Failure 500 {object} map[string]string "Failed to update destination"
// @Router /destinations/{id} [put]
func (h *fleetHandler) updateDestination(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	destinationID := c.Param("id")

	var req dto.UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	destination, err := h.destinationService.UpdateDestination(c.Request.Context(), destinationID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Destination not found"})
		} else {
			logger.Error("Failed to update destination", slog.String("error", err.Error()), slog.String("destination_id", destinationID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update destination"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDestinationResponse(destination))
}
