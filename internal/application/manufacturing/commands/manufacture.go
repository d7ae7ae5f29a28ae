package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/adapters/metrics"
	"github.com/andrescamacho/supplychain-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/supplychain-go/internal/application/ledger/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// ManufactureCommand runs one production batch at a factory
type ManufactureCommand struct {
	Factory string
	Product string
	Amount  int
}

type ManufactureResponse struct {
	Production *manufacturing.Production
	Factory    world.FactoryView
}

// ManufactureHandler executes production and journals its cost
type ManufactureHandler struct {
	world    *world.World
	recorder *ledgerCommands.JournalRecorder
}

func NewManufactureHandler(w *world.World, recorder *ledgerCommands.JournalRecorder) *ManufactureHandler {
	return &ManufactureHandler{world: w, recorder: recorder}
}

func (h *ManufactureHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ManufactureCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ManufactureCommand")
	}
	logger := common.LoggerFromContext(ctx)

	production, err := h.world.Manufacture(cmd.Factory, cmd.Product, cmd.Amount)
	if err != nil {
		logger.Log("WARNING", "Manufacture rejected", map[string]interface{}{
			"factory": cmd.Factory,
			"product": cmd.Product,
			"amount":  cmd.Amount,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("failed to manufacture %s at %s: %w", cmd.Product, cmd.Factory, err)
	}

	logger.Log("INFO", "Manufacture completed", map[string]interface{}{
		"factory":       production.Factory,
		"product":       production.Product,
		"amount":        production.Amount,
		"cost":          production.Cost.String(),
		"balance_after": production.BalanceAfter.String(),
	})

	h.recorder.RecordProduction(ctx, production)
	metrics.RecordManufacture(production.Factory, production.Product, production.Amount, production.Cost.Float64())

	view, err := h.world.Factory(cmd.Factory)
	if err != nil {
		return nil, err
	}
	return &ManufactureResponse{Production: production, Factory: view}, nil
}
