package repositories

import (
	"context"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
)

// VehicleReader defines read operations for fleet vehicles
type VehicleReader interface {
	FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
}

// VehicleWriter defines write operations for fleet vehicles
type VehicleWriter interface {
	SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error
	UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

// VehicleRepositoryFacade combines all vehicle-related repository interfaces
type VehicleRepositoryFacade interface {
	VehicleReader
	VehicleWriter
}

// DestinationReader defines read operations for destinations
type DestinationReader interface {
	FindDestinationByID(ctx context.Context, destinationID string) (*domain.Destination, error)
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
}

// DestinationWriter defines write operations for destinations
type DestinationWriter interface {
	SaveDestination(ctx context.Context, destination domain.Destination) error
	UpdateDestination(ctx context.Context, destination domain.Destination) error
}

// DestinationRepositoryFacade combines all destination-related repository interfaces
type DestinationRepositoryFacade interface {
	DestinationReader
	DestinationWriter
}
