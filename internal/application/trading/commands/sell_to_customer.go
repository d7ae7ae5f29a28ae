package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/supplychain-go/internal/application/ledger/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// SellToCustomerCommand has a customer buy from a market at the market's ask price
type SellToCustomerCommand struct {
	Market   string
	Customer string
	Good     string
	Amount   int
}

type SellToCustomerHandler struct {
	world    *world.World
	recorder *ledgerCommands.JournalRecorder
}

func NewSellToCustomerHandler(w *world.World, recorder *ledgerCommands.JournalRecorder) *SellToCustomerHandler {
	return &SellToCustomerHandler{world: w, recorder: recorder}
}

func (h *SellToCustomerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SellToCustomerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SellToCustomerCommand")
	}

	receipt, err := h.world.SellToCustomer(cmd.Market, cmd.Customer, cmd.Good, cmd.Amount)
	if err != nil {
		logRejected(ctx, cmd.Market, cmd.Customer, cmd.Good, cmd.Amount, err)
		return nil, fmt.Errorf("%s could not buy %s from %s: %w", cmd.Customer, cmd.Good, cmd.Market, err)
	}

	completeTrade(ctx, h.recorder, ledger.TransactionTypeCustomerPurchase, receipt)
	return &TradeResponse{Receipt: receipt}, nil
}
