package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/adapters/metrics"
	"github.com/andrescamacho/supplychain-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/supplychain-go/internal/application/ledger/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// ReceiveMaterialsCommand delivers raw materials to a factory. No cash moves.
type ReceiveMaterialsCommand struct {
	Factory  string
	Material string
	Amount   int
}

type ReceiveMaterialsResponse struct {
	Factory world.FactoryView
}

type ReceiveMaterialsHandler struct {
	world    *world.World
	recorder *ledgerCommands.JournalRecorder
}

func NewReceiveMaterialsHandler(w *world.World, recorder *ledgerCommands.JournalRecorder) *ReceiveMaterialsHandler {
	return &ReceiveMaterialsHandler{world: w, recorder: recorder}
}

func (h *ReceiveMaterialsHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*ReceiveMaterialsCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *ReceiveMaterialsCommand")
	}

	if err := h.world.ReceiveMaterials(cmd.Factory, cmd.Material, cmd.Amount); err != nil {
		return nil, fmt.Errorf("failed to deliver %s to %s: %w", cmd.Material, cmd.Factory, err)
	}

	view, err := h.world.Factory(cmd.Factory)
	if err != nil {
		return nil, err
	}

	h.recorder.RecordAdjustment(ctx, ledger.TransactionTypeRestock,
		cmd.Factory, string(world.HolderFactoryMaterial), cmd.Material, cmd.Amount, view.Balance)
	metrics.RecordStockAdjustment("restock", string(world.HolderFactoryMaterial), cmd.Amount)

	return &ReceiveMaterialsResponse{Factory: view}, nil
}
