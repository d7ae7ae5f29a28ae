package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/adapters/metrics"
	"github.com/andrescamacho/supplychain-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/supplychain-go/internal/application/ledger/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// DiscardCommand destroys goods held by a customer, factory or market.
// The entry disappears once it reaches zero.
type DiscardCommand struct {
	Holder     string
	HolderKind world.HolderKind
	Good       string
	Amount     int
}

// RestockCommand adds goods to a holder without payment
type RestockCommand struct {
	Holder     string
	HolderKind world.HolderKind
	Good       string
	Amount     int
}

type AdjustStockResponse struct {
	Holder     string
	HolderKind world.HolderKind
	Good       string
	Units      int // units left after the adjustment
}

// AdjustStockHandler handles DiscardCommand and RestockCommand
type AdjustStockHandler struct {
	world    *world.World
	recorder *ledgerCommands.JournalRecorder
}

func NewAdjustStockHandler(w *world.World, recorder *ledgerCommands.JournalRecorder) *AdjustStockHandler {
	return &AdjustStockHandler{world: w, recorder: recorder}
}

func (h *AdjustStockHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	var (
		holder, good    string
		kind            world.HolderKind
		amount          int
		transactionType ledger.TransactionType
		err             error
	)

	switch cmd := request.(type) {
	case *DiscardCommand:
		holder, kind, good, amount = cmd.Holder, cmd.HolderKind, cmd.Good, cmd.Amount
		transactionType = ledger.TransactionTypeDiscard
		err = h.world.Discard(kind, holder, good, amount)
	case *RestockCommand:
		holder, kind, good, amount = cmd.Holder, cmd.HolderKind, cmd.Good, cmd.Amount
		transactionType = ledger.TransactionTypeRestock
		err = h.world.Restock(kind, holder, good, amount)
	default:
		return nil, fmt.Errorf("invalid request type: %T", request)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to adjust %s at %s: %w", good, holder, err)
	}

	units, balance, err := h.position(kind, holder, good)
	if err != nil {
		return nil, err
	}

	h.recorder.RecordAdjustment(ctx, transactionType, holder, string(kind), good, amount, balance)
	metrics.RecordStockAdjustment(string(transactionType), string(kind), amount)

	return &AdjustStockResponse{Holder: holder, HolderKind: kind, Good: good, Units: units}, nil
}

// position reads back the units left and the holder's balance
func (h *AdjustStockHandler) position(kind world.HolderKind, holder, good string) (int, shared.Money, error) {
	switch kind {
	case world.HolderCustomer:
		c, err := h.world.Customer(holder)
		return c.Inventory[good], c.Balance, err
	case world.HolderMarket:
		m, err := h.world.Market(holder)
		return m.Stock[good], m.Balance, err
	case world.HolderFactoryMaterial:
		f, err := h.world.Factory(holder)
		return f.Materials[good], f.Balance, err
	default:
		f, err := h.world.Factory(holder)
		return f.Products[good], f.Balance, err
	}
}
