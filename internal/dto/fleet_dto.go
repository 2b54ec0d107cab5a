package dto

import (
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
)

// CreateVehicleRequest defines the structure for adding a fleet vehicle.
type CreateVehicleRequest struct {
	Plate        string `json:"plate" binding:"required"`
	Model        string `json:"model" binding:"required"`
	Brand        string `json:"brand"`
	Year         int    `json:"year" binding:"omitempty,gte=1950,lte=2100"`
	Capacity     int    `json:"capacity" binding:"required,gte=1"`
	DriverName   string `json:"driverName"`
	DriverPhone  string `json:"driverPhone"`
	Observations string `json:"observations"`
}

// UpdateVehicleRequest defines the mutable fields of a vehicle.
type UpdateVehicleRequest struct {
	Model        *string               `json:"model"`
	Brand        *string               `json:"brand"`
	Year         *int                  `json:"year" binding:"omitempty,gte=1950,lte=2100"`
	Capacity     *int                  `json:"capacity" binding:"omitempty,gte=1"`
	Status       *domain.VehicleStatus `json:"status" binding:"omitempty,oneof=ACTIVE MAINTENANCE RETIRED"`
	DriverName   *string               `json:"driverName"`
	DriverPhone  *string               `json:"driverPhone"`
	Observations *string               `json:"observations"`
}

// VehicleResponse defines the API shape of a fleet vehicle.
type VehicleResponse struct {
	VehicleID    string               `json:"vehicleID"`
	Plate        string               `json:"plate"`
	Model        string               `json:"model"`
	Brand        string               `json:"brand"`
	Year         int                  `json:"year"`
	Capacity     int                  `json:"capacity"`
	Status       domain.VehicleStatus `json:"status"`
	DriverName   string               `json:"driverName,omitempty"`
	DriverPhone  string               `json:"driverPhone,omitempty"`
	Observations string               `json:"observations,omitempty"`
	CreatedAt    time.Time            `json:"createdAt"`
}

// ToVehicleResponse converts a domain.Vehicle to VehicleResponse DTO
func ToVehicleResponse(vehicle *domain.Vehicle) VehicleResponse {
	return VehicleResponse{
		VehicleID:    vehicle.VehicleID,
		Plate:        vehicle.Plate,
		Model:        vehicle.Model,
		Brand:        vehicle.Brand,
		Year:         vehicle.Year,
		Capacity:     vehicle.Capacity,
		Status:       vehicle.Status,
		DriverName:   vehicle.DriverName,
		DriverPhone:  vehicle.DriverPhone,
		Observations: vehicle.Observations,
		CreatedAt:    vehicle.CreatedAt,
	}
}

// ToListVehicleResponse converts a slice of vehicles to response DTOs.
func ToListVehicleResponse(vehicles []domain.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses
}

// CreateDestinationRequest defines the structure for adding a destination.
type CreateDestinationRequest struct {
	Name         string `json:"name" binding:"required"`
	Country      string `json:"country" binding:"required"`
	CurrencyCode string `json:"currencyCode" binding:"required,currencycode"`
}

// UpdateDestinationRequest defines the mutable fields of a destination.
type UpdateDestinationRequest struct {
	Name         *string `json:"name"`
	Country      *string `json:"country"`
	CurrencyCode *string `json:"currencyCode" binding:"omitempty,currencycode"`
	Active       *bool   `json:"active"`
}

// DestinationResponse defines the API shape of a destination.
type DestinationResponse struct {
	DestinationID string `json:"destinationID"`
	Name          string `json:"name"`
	Country       string `json:"country"`
	CurrencyCode  string `json:"currencyCode"`
	Active        bool   `json:"active"`
}

// ToDestinationResponse converts a domain.Destination to DestinationResponse DTO
func ToDestinationResponse(destination *domain.Destination) DestinationResponse {
	return DestinationResponse{
		DestinationID: destination.DestinationID,
		Name:          destination.Name,
		Country:       destination.Country,
		CurrencyCode:  destination.CurrencyCode,
		Active:        destination.Active,
	}
}

// ToListDestinationResponse converts a slice of destinations to response DTOs.
func ToListDestinationResponse(destinations []domain.Destination) []DestinationResponse {
	responses := make([]DestinationResponse, len(destinations))
	for i := range destinations {
		responses[i] = ToDestinationResponse(&destinations[i])
	}
	return responses
}
