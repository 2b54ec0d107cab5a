package services

import (
	portsrepo "github.com/rutasur/tour_backoffice_app/internal/core/ports/repositories"
	portssvc "github.com/rutasur/tour_backoffice_app/internal/core/ports/services"
	"github.com/rutasur/tour_backoffice_app/pkg/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency and exchange rates first since the record pipeline depends on them
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)

	container.Record = NewRecordService(
		repos.RecordRepo,
		container.ExchangeRate,
		WithDefaultDisplayCurrency(cfg.DefaultDisplayCurrency),
	)

	container.Booking = NewBookingService(
		repos.BookingRepo,
		WithReceivableRecording(repos.RecordRepo),
		WithShareLinkTTL(cfg.ShareLinkTTL),
	)

	container.Vehicle = NewVehicleService(repos.VehicleRepo)
	container.Destination = NewDestinationService(repos.DestinationRepo)
	container.User = NewUserService(repos.UserRepo)

	container.Reporting = NewReportingService(container.Record)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.RecordSvcFacade       = (*recordService)(nil)
	_ portssvc.BookingSvcFacade      = (*bookingService)(nil)
)
