package setup

import (
	"reflect"

	inventoryCommands "github.com/andrescamacho/supplychain-go/internal/application/inventory/commands"
	ledgerCommands "github.com/andrescamacho/supplychain-go/internal/application/ledger/commands"
	ledgerQueries "github.com/andrescamacho/supplychain-go/internal/application/ledger/queries"
	manufacturingCommands "github.com/andrescamacho/supplychain-go/internal/application/manufacturing/commands"
	"github.com/andrescamacho/supplychain-go/internal/application/mediator"
	registryCommands "github.com/andrescamacho/supplychain-go/internal/application/registry/commands"
	registryQueries "github.com/andrescamacho/supplychain-go/internal/application/registry/queries"
	tradingCommands "github.com/andrescamacho/supplychain-go/internal/application/trading/commands"
	tradingQueries "github.com/andrescamacho/supplychain-go/internal/application/trading/queries"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// HandlerRegistry holds all application dependencies for handler creation
type HandlerRegistry struct {
	world           *world.World
	transactionRepo ledger.TransactionRepository
	clock           shared.Clock
}

// NewHandlerRegistry creates a new handler registry with required dependencies
func NewHandlerRegistry(
	w *world.World,
	transactionRepo ledger.TransactionRepository,
	clock shared.Clock,
) *HandlerRegistry {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &HandlerRegistry{
		world:           w,
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

func register(m mediator.Mediator, handler mediator.RequestHandler, requests ...mediator.Request) error {
	for _, request := range requests {
		if err := m.Register(reflect.TypeOf(request), handler); err != nil {
			return err
		}
	}
	return nil
}

// RegisterRegistryHandlers registers entity creation, listing and lookup
func (r *HandlerRegistry) RegisterRegistryHandlers(m mediator.Mediator) error {
	if err := register(m, registryCommands.NewAddProducerHandler(r.world),
		&registryCommands.AddProducerCommand{}); err != nil {
		return err
	}
	if err := register(m, registryCommands.NewUpdateProducerCostHandler(r.world),
		&registryCommands.UpdateProducerCostCommand{}); err != nil {
		return err
	}
	if err := register(m, registryCommands.NewAddPartyHandler(r.world),
		&registryCommands.AddFactoryCommand{},
		&registryCommands.AddMarketCommand{},
		&registryCommands.AddCustomerCommand{},
	); err != nil {
		return err
	}
	if err := register(m, registryQueries.NewListEntitiesHandler(r.world),
		&registryQueries.ListProducersQuery{},
		&registryQueries.ListFactoriesQuery{},
		&registryQueries.ListMarketsQuery{},
		&registryQueries.ListCustomersQuery{},
	); err != nil {
		return err
	}
	if err := register(m, registryQueries.NewGetEntityHandler(r.world),
		&registryQueries.GetProducerQuery{},
		&registryQueries.GetFactoryQuery{},
		&registryQueries.GetMarketQuery{},
		&registryQueries.GetCustomerQuery{},
	); err != nil {
		return err
	}
	return register(m, registryQueries.NewGetBalancesHandler(r.world), &registryQueries.GetBalancesQuery{})
}

// RegisterManufacturingHandlers registers design, material delivery and production commands
func (r *HandlerRegistry) RegisterManufacturingHandlers(m mediator.Mediator) error {
	recorder := ledgerCommands.NewJournalRecorder(m)

	if err := register(m, manufacturingCommands.NewAddDesignHandler(r.world),
		&manufacturingCommands.AddDesignCommand{}); err != nil {
		return err
	}
	if err := register(m, manufacturingCommands.NewReceiveMaterialsHandler(r.world, recorder),
		&manufacturingCommands.ReceiveMaterialsCommand{}); err != nil {
		return err
	}
	return register(m, manufacturingCommands.NewManufactureHandler(r.world, recorder),
		&manufacturingCommands.ManufactureCommand{})
}

// RegisterTradingHandlers registers both trade directions and market pricing
func (r *HandlerRegistry) RegisterTradingHandlers(m mediator.Mediator) error {
	recorder := ledgerCommands.NewJournalRecorder(m)

	if err := register(m, tradingCommands.NewSellToMarketHandler(r.world, recorder),
		&tradingCommands.SellToMarketCommand{}); err != nil {
		return err
	}
	if err := register(m, tradingCommands.NewSellToCustomerHandler(r.world, recorder),
		&tradingCommands.SellToCustomerCommand{}); err != nil {
		return err
	}
	if err := register(m, tradingCommands.NewSetPriceHandler(r.world),
		&tradingCommands.SetPriceCommand{}); err != nil {
		return err
	}
	return register(m, tradingQueries.NewGetPriceHandler(r.world), &tradingQueries.GetPriceQuery{})
}

// RegisterInventoryHandlers registers restock and discard
func (r *HandlerRegistry) RegisterInventoryHandlers(m mediator.Mediator) error {
	return register(m, inventoryCommands.NewAdjustStockHandler(r.world, ledgerCommands.NewJournalRecorder(m)),
		&inventoryCommands.DiscardCommand{},
		&inventoryCommands.RestockCommand{},
	)
}

// RegisterLedgerHandlers registers all ledger command and query handlers with the mediator
//
// This method registers:
//   - RecordTransactionCommand → RecordTransactionHandler (used by the other handlers via JournalRecorder)
//   - GetTransactionsQuery → GetTransactionsHandler
//   - GetStatementQuery → GetStatementHandler
func (r *HandlerRegistry) RegisterLedgerHandlers(m mediator.Mediator) error {
	if err := register(m, ledgerCommands.NewRecordTransactionHandler(r.transactionRepo, r.clock),
		&ledgerCommands.RecordTransactionCommand{}); err != nil {
		return err
	}
	if err := register(m, ledgerQueries.NewGetTransactionsHandler(r.transactionRepo),
		&ledgerQueries.GetTransactionsQuery{}); err != nil {
		return err
	}
	return register(m, ledgerQueries.NewGetStatementHandler(r.transactionRepo),
		&ledgerQueries.GetStatementQuery{})
}

// CreateConfiguredMediator creates a mediator with every handler registered and the
// given middlewares installed (outermost first)
func (r *HandlerRegistry) CreateConfiguredMediator(middlewares ...mediator.Middleware) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	for _, mw := range middlewares {
		m.Use(mw)
	}

	steps := []func(mediator.Mediator) error{
		r.RegisterRegistryHandlers,
		r.RegisterManufacturingHandlers,
		r.RegisterTradingHandlers,
		r.RegisterInventoryHandlers,
		r.RegisterLedgerHandlers,
	}
	for _, step := range steps {
		if err := step(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}
