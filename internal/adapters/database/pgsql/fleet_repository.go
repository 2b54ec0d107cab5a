package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/rutasur/tour_backoffice_app/internal/apperrors"
	"github.com/rutasur/tour_backoffice_app/internal/core/domain"
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const vehicleColumns = `vehicle_id, plate, model, brand, year, capacity, status,
	driver_name, driver_phone, observations, created_at, created_by, last_updated_at, last_updated_by`

// PgxVehicleRepository implements fleet vehicle persistence using pgxpool.
type PgxVehicleRepository struct {
	db *pgxpool.Pool
}

func newPgxVehicleRepository(db *pgxpool.Pool) portsrepo.VehicleRepositoryFacade {
	return &PgxVehicleRepository{db: db}
}

var _ portsrepo.VehicleRepositoryFacade = (*PgxVehicleRepository)(nil)

func scanVehicle(row pgx.CollectableRow) (domain.Vehicle, error) {
	var v domain.Vehicle
	err := row.Scan(
		&v.VehicleID, &v.Plate, &v.Model, &v.Brand, &v.Year, &v.Capacity, &v.Status,
		&v.DriverName, &v.DriverPhone, &v.Observations,
		&v.CreatedAt, &v.CreatedBy, &v.LastUpdatedAt, &v.LastUpdatedBy,
	)
	return v, err
}

func (r *PgxVehicleRepository) SaveVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		INSERT INTO vehicles (` + vehicleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := r.db.Exec(ctx, query,
		vehicle.VehicleID, vehicle.Plate, vehicle.Model, vehicle.Brand, vehicle.Year,
		vehicle.Capacity, vehicle.Status, vehicle.DriverName, vehicle.DriverPhone, vehicle.Observations,
		vehicle.CreatedAt, vehicle.CreatedBy, vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting vehicle: %w", err)
	}
	return nil
}

func (r *PgxVehicleRepository) UpdateVehicle(ctx context.Context, vehicle domain.Vehicle) error {
	query := `
		UPDATE vehicles SET
			plate = $2, model = $3, brand = $4, year = $5, capacity = $6, status = $7,
			driver_name = $8, driver_phone = $9, observations = $10,
			last_updated_at = $11, last_updated_by = $12
		WHERE vehicle_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		vehicle.VehicleID, vehicle.Plate, vehicle.Model, vehicle.Brand, vehicle.Year,
		vehicle.Capacity, vehicle.Status, vehicle.DriverName, vehicle.DriverPhone, vehicle.Observations,
		vehicle.LastUpdatedAt, vehicle.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating vehicle %s: %w", vehicle.VehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE vehicle_id = $1`, vehicleID)
	if err != nil {
		return fmt.Errorf("error deleting vehicle %s: %w", vehicleID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxVehicleRepository) FindVehicleByID(ctx context.Context, vehicleID string) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vehicle_id = $1`
	rows, err := r.db.Query(ctx, query, vehicleID)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicle %s: %w", vehicleID, err)
	}
	vehicle, err := pgx.CollectExactlyOneRow(rows, scanVehicle)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning vehicle %s: %w", vehicleID, err)
	}
	return &vehicle, nil
}

func (r *PgxVehicleRepository) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY plate`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying vehicles: %w", err)
	}
	defer rows.Close()

	vehicles, err := pgx.CollectRows(rows, scanVehicle)
	if err != nil {
		return nil, fmt.Errorf("error scanning vehicles: %w", err)
	}
	return vehicles, nil
}

const destinationColumns = `destination_id, name, country, currency_code, active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxDestinationRepository implements destination persistence using pgxpool.
type PgxDestinationRepository struct {
	db *pgxpool.Pool
}

func newPgxDestinationRepository(db *pgxpool.Pool) portsrepo.DestinationRepositoryFacade {
	return &PgxDestinationRepository{db: db}
}

var _ portsrepo.DestinationRepositoryFacade = (*PgxDestinationRepository)(nil)

func scanDestination(row pgx.CollectableRow) (domain.Destination, error) {
	var d domain.Destination
	err := row.Scan(
		&d.DestinationID, &d.Name, &d.Country, &d.CurrencyCode, &d.Active,
		&d.CreatedAt, &d.CreatedBy, &d.LastUpdatedAt, &d.LastUpdatedBy,
	)
	return d, err
}

func (r *PgxDestinationRepository) SaveDestination(ctx context.Context, destination domain.Destination) error {
	query := `
		INSERT INTO destinations (` + destinationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		destination.DestinationID, destination.Name, destination.Country,
		destination.CurrencyCode, destination.Active,
		destination.CreatedAt, destination.CreatedBy, destination.LastUpdatedAt, destination.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error inserting destination: %w", err)
	}
	return nil
}

func (r *PgxDestinationRepository) UpdateDestination(ctx context.Context, destination domain.Destination) error {
	query := `
		UPDATE destinations SET
			name = $2, country = $3, currency_code = $4, active = $5,
			last_updated_at = $6, last_updated_by = $7
		WHERE destination_id = $1
	`
	tag, err := r.db.Exec(ctx, query,
		destination.DestinationID, destination.Name, destination.Country,
		destination.CurrencyCode, destination.Active,
		destination.LastUpdatedAt, destination.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating destination %s: %w", destination.DestinationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxDestinationRepository) FindDestinationByID(ctx context.Context, destinationID string) (*domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations WHERE destination_id = $1`
	rows, err := r.db.Query(ctx, query, destinationID)
	if err != nil {
		return nil, fmt.Errorf("error querying destination %s: %w", destinationID, err)
	}
	destination, err := pgx.CollectExactlyOneRow(rows, scanDestination)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error scanning destination %s: %w", destinationID, err)
	}
	return &destination, nil
}

func (r *PgxDestinationRepository) ListDestinations(ctx context.Context) ([]domain.Destination, error) {
	query := `SELECT ` + destinationColumns + ` FROM destinations ORDER BY name`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying destinations: %w", err)
	}
	defer rows.Close()

	destinations, err := pgx.CollectRows(rows, scanDestination)
	if err != nil {
		return nil, fmt.Errorf("error scanning destinations: %w", err)
	}
	return destinations, nil
}
