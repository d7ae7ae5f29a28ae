package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/adapters/metrics"
	"github.com/andrescamacho/supplychain-go/internal/application/common"
	ledgerCommands "github.com/andrescamacho/supplychain-go/internal/application/ledger/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/trading"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// SellToMarketCommand has a market buy finished goods from a factory.
// A zero UnitPrice means "at the factory's design cost".
type SellToMarketCommand struct {
	Factory   string
	Market    string
	Good      string
	Amount    int
	UnitPrice shared.Money
}

type TradeResponse struct {
	Receipt *trading.Receipt
}

type SellToMarketHandler struct {
	world    *world.World
	recorder *ledgerCommands.JournalRecorder
}

func NewSellToMarketHandler(w *world.World, recorder *ledgerCommands.JournalRecorder) *SellToMarketHandler {
	return &SellToMarketHandler{world: w, recorder: recorder}
}

func (h *SellToMarketHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SellToMarketCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SellToMarketCommand")
	}

	receipt, err := h.world.SellToMarket(cmd.Factory, cmd.Market, cmd.Good, cmd.Amount, cmd.UnitPrice)
	if err != nil {
		logRejected(ctx, cmd.Factory, cmd.Market, cmd.Good, cmd.Amount, err)
		return nil, fmt.Errorf("%s could not buy %s from %s: %w", cmd.Market, cmd.Good, cmd.Factory, err)
	}

	completeTrade(ctx, h.recorder, ledger.TransactionTypeMarketPurchase, receipt)
	return &TradeResponse{Receipt: receipt}, nil
}

func logRejected(ctx context.Context, seller, buyer, good string, amount int, err error) {
	common.LoggerFromContext(ctx).Log("WARNING", "Trade rejected", map[string]interface{}{
		"seller": seller,
		"buyer":  buyer,
		"good":   good,
		"amount": amount,
		"kind":   shared.KindOf(err).String(),
		"error":  err.Error(),
	})
}

// completeTrade logs, journals and counts a committed trade
func completeTrade(ctx context.Context, recorder *ledgerCommands.JournalRecorder, transactionType ledger.TransactionType, receipt *trading.Receipt) {
	common.LoggerFromContext(ctx).Log("INFO", "Trade completed", map[string]interface{}{
		"seller":     receipt.Seller,
		"buyer":      receipt.Buyer,
		"good":       receipt.Good,
		"amount":     receipt.Amount,
		"unit_price": receipt.UnitPrice.String(),
		"total":      receipt.Total.String(),
	})
	recorder.RecordTrade(ctx, transactionType, receipt)
	metrics.RecordTrade(string(transactionType), receipt.Good, receipt.Amount, receipt.Total.Float64())
}
