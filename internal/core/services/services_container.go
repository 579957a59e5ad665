package services

import (
	"github.com/SscSPs/smart_converter/internal/catalog"
	portsrepo "github.com/SscSPs/smart_converter/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/smart_converter/internal/core/ports/services"
	"github.com/SscSPs/smart_converter/internal/platform/config"
	"github.com/SscSPs/smart_converter/pkg/units"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	registry *units.Registry,
	cat *catalog.Catalog,
) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Unit: NewUnitService(registry, cat),
		Currency: NewCurrencyService(
			repos.RateCache,
			repos.RateProvider,
			cat,
			WithRateMaxAge(cfg.RatesMaxAge),
		),
		Zakat:   NewZakatService(),
		History: NewHistoryService(cfg.HistoryCapacity, cfg.HistoryMaxSessions, cfg.SessionIdleTimeout),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UnitSvcFacade     = (*unitService)(nil)
	_ portssvc.CurrencySvcFacade = (*currencyService)(nil)
	_ portssvc.ZakatSvc          = zakatService{}
	_ portssvc.HistorySvcFacade  = (*historyService)(nil)
)
