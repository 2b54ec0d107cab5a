package pgsql

import (
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		RecordRepo:       newPgxRecordRepository(dbPool),
		BookingRepo:      newPgxBookingRepository(dbPool),
		VehicleRepo:      newPgxVehicleRepository(dbPool),
		DestinationRepo:  newPgxDestinationRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
