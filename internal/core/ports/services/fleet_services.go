package services

import (
	"context"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
)

// VehicleSvcFacade defines operations over the operator's fleet.
type VehicleSvcFacade interface {
	GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error)
	ListVehicles(ctx context.Context) ([]domain.Vehicle, error)
	CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, updaterUserID string) (*domain.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error
}

// DestinationSvcFacade defines operations over destinations.
type DestinationSvcFacade interface {
	GetDestination(ctx context.Context, destinationID string) (*domain.Destination, error)
	ListDestinations(ctx context.Context) ([]domain.Destination, error)
	CreateDestination(ctx context.Context, req dto.CreateDestinationRequest, creatorUserID string) (*domain.Destination, error)
	UpdateDestination(ctx context.Context, destinationID string, req dto.UpdateDestinationRequest, updaterUserID string) (*domain.Destination, error)
}
