package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// AddFactoryCommand registers a factory with a starting balance
type AddFactoryCommand struct {
	Name    string
	Balance shared.Money
}

type AddFactoryResponse struct {
	Factory world.FactoryView
}

// AddMarketCommand registers a market with a starting balance
type AddMarketCommand struct {
	Name    string
	Balance shared.Money
}

type AddMarketResponse struct {
	Market world.MarketView
}

// AddCustomerCommand registers a customer with a starting balance
type AddCustomerCommand struct {
	Name    string
	Balance shared.Money
}

type AddCustomerResponse struct {
	Customer world.CustomerView
}

// AddPartyHandler handles the three commands that register a trading party.
// They differ only in which registry receives the new entity.
type AddPartyHandler struct {
	world *world.World
}

func NewAddPartyHandler(w *world.World) *AddPartyHandler {
	return &AddPartyHandler{world: w}
}

func (h *AddPartyHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	var (
		response common.Response
		role     string
		name     string
		balance  shared.Money
		err      error
	)

	switch cmd := request.(type) {
	case *AddFactoryCommand:
		role, name, balance = "factory", cmd.Name, cmd.Balance
		var view world.FactoryView
		view, err = h.world.AddFactory(cmd.Name, cmd.Balance)
		response = &AddFactoryResponse{Factory: view}
	case *AddMarketCommand:
		role, name, balance = "market", cmd.Name, cmd.Balance
		var view world.MarketView
		view, err = h.world.AddMarket(cmd.Name, cmd.Balance)
		response = &AddMarketResponse{Market: view}
	case *AddCustomerCommand:
		role, name, balance = "customer", cmd.Name, cmd.Balance
		var view world.CustomerView
		view, err = h.world.AddCustomer(cmd.Name, cmd.Balance)
		response = &AddCustomerResponse{Customer: view}
	default:
		return nil, fmt.Errorf("invalid request type: %T", request)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to add %s: %w", role, err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "Party added", map[string]interface{}{
		"role":    role,
		"name":    name,
		"balance": balance.String(),
	})
	return response, nil
}
