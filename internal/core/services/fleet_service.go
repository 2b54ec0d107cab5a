package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/internal/dto"
	"github.com/google/uuid"
)

// VehicleService provides business logic for the operator's fleet.
type VehicleService struct {
	BaseService
	vehicleRepo portsrepo.VehicleRepositoryFacade
}

// NewVehicleService creates a new VehicleService.
func NewVehicleService(vehicleRepo portsrepo.VehicleRepositoryFacade) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

var _ portssvc.VehicleSvcFacade = (*VehicleService)(nil)

// CreateVehicle registers a new fleet vehicle, active by default.
func (s *VehicleService) CreateVehicle(ctx context.Context, req dto.CreateVehicleRequest, creatorUserID string) (*domain.Vehicle, error) {
	now := time.Now()
	vehicle := domain.Vehicle{
		VehicleID:    uuid.NewString(),
		Plate:        req.Plate,
		Model:        req.Model,
		Brand:        req.Brand,
		Year:         req.Year,
		Capacity:     req.Capacity,
		Status:       domain.VehicleActive,
		DriverName:   req.DriverName,
		DriverPhone:  req.DriverPhone,
		Observations: req.Observations,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.vehicleRepo.SaveVehicle(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle in service: %w", err)
	}
	s.LogInfo(ctx, "Vehicle created", slog.String("vehicle_id", vehicle.VehicleID), slog.String("plate", vehicle.Plate))
	return &vehicle, nil
}

// GetVehicle retrieves a vehicle by ID.
func (s *VehicleService) GetVehicle(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle in service: %w", err)
	}
	return vehicle, nil
}

// ListVehicles retrieves the whole fleet.
func (s *VehicleService) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	vehicles, err := s.vehicleRepo.ListVehicles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles in service: %w", err)
	}
	if vehicles == nil {
		return []domain.Vehicle{}, nil
	}
	return vehicles, nil
}

// UpdateVehicle applies the non-nil fields of the request to a vehicle.
func (s *VehicleService) UpdateVehicle(ctx context.Context, vehicleID string, req dto.UpdateVehicleRequest, updaterUserID string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.FindVehicleByID(ctx, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle for update: %w", err)
	}

	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Brand != nil {
		vehicle.Brand = *req.Brand
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Capacity != nil {
		vehicle.Capacity = *req.Capacity
	}
	if req.Status != nil {
		vehicle.Status = *req.Status
	}
	if req.DriverName != nil {
		vehicle.DriverName = *req.DriverName
	}
	if req.DriverPhone != nil {
		vehicle.DriverPhone = *req.DriverPhone
	}
	if req.Observations != nil {
		vehicle.Observations = *req.Observations
	}
	vehicle.LastUpdatedAt = time.Now()
	vehicle.LastUpdatedBy = updaterUserID

	if err := s.vehicleRepo.UpdateVehicle(ctx, *vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle in service: %w", err)
	}
	return vehicle, nil
}

// DeleteVehicle removes a vehicle from the fleet.
func (s *VehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	if err := s.vehicleRepo.DeleteVehicle(ctx, vehicleID); err != nil {
		return fmt.Errorf("failed to delete vehicle in service: %w", err)
	}
	s.LogInfo(ctx, "Vehicle deleted", slog.String("vehicle_id", vehicleID))
	return nil
}

// DestinationService provides business logic for destinations.
type DestinationService struct {
	BaseService
	destinationRepo portsrepo.DestinationRepositoryFacade
}

// NewDestinationService creates a new DestinationService.
func NewDestinationService(destinationRepo portsrepo.DestinationRepositoryFacade) *DestinationService {
	return &DestinationService{destinationRepo: destinationRepo}
}

var _ portssvc.DestinationSvcFacade = (*DestinationService)(nil)

// CreateDestination registers a new operated region.
func (s *DestinationService) CreateDestination(ctx context.Context, req dto.CreateDestinationRequest, creatorUserID string) (*domain.Destination, error) {
	now := time.Now()
	destination := domain.Destination{
		DestinationID: uuid.NewString(),
		Name:          req.Name,
		Country:       req.Country,
		CurrencyCode:  req.CurrencyCode,
		Active:        true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.destinationRepo.SaveDestination(ctx, destination); err != nil {
		return nil, fmt.Errorf("failed to create destination in service: %w", err)
	}
	return &destination, nil
}

// GetDestination retrieves a destination by ID.
func (s *DestinationService) GetDestination(ctx context.Context, destinationID string) (*domain.Destination, error) {
	destination, err := s.destinationRepo.FindDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get destination in service: %w", err)
	}
	return destination, nil
}

// ListDestinations retrieves all destinations.
func (s *DestinationService) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	destinations, err := s.destinationRepo.ListDestinations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list destinations in service: %w", err)
	}
	if destinations == nil {
		return []domain.Destination{}, nil
	}
	return destinations, nil
}

// UpdateDestination applies the non-nil fields of the request to a destination.
func (s *DestinationService) UpdateDestination(ctx context.Context, destinationID string, req dto.UpdateDestinationRequest, updaterUserID string) (*domain.Destination, error) {
	destination, err := s.destinationRepo.FindDestinationByID(ctx, destinationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load destination for update: %w", err)
	}

	if req.Name != nil {
		destination.Name = *req.Name
	}
	if req.Country != nil {
		destination.Country = *req.Country
	}
	if req.CurrencyCode != nil {
		destination.CurrencyCode = *req.CurrencyCode
	}
	if req.Active != nil {
		destination.Active = *req.Active
	}
	destination.LastUpdatedAt = time.Now()
	destination.LastUpdatedBy = updaterUserID

	if err := s.destinationRepo.UpdateDestination(ctx, *destination); err != nil {
		return nil, fmt.Errorf("failed to update destination in service: %w", err)
	}
	return destination, nil
}
