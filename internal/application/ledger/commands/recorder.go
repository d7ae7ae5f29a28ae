package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/trading"
)

// JournalRecorder turns completed operations into RecordTransactionCommands.
// Recording happens after the operation has committed; a failure is logged
// and never undoes the operation.
type JournalRecorder struct {
	mediator common.Mediator
}

func NewJournalRecorder(mediator common.Mediator) *JournalRecorder {
	return &JournalRecorder{mediator: mediator}
}

// RecordTrade journals a trade from the buyer's side; the seller is the counterparty
func (r *JournalRecorder) RecordTrade(ctx context.Context, transactionType ledger.TransactionType, receipt *trading.Receipt) {
	r.send(ctx, &RecordTransactionCommand{
		TransactionType: string(transactionType),
		Party:           receipt.Buyer,
		Counterparty:    receipt.Seller,
		Good:            receipt.Good,
		Quantity:        receipt.Amount,
		UnitPrice:       receipt.UnitPrice,
		Total:           receipt.Total,
		BalanceBefore:   receipt.BuyerBalanceBefore,
		BalanceAfter:    receipt.BuyerBalanceAfter,
		Description: fmt.Sprintf("%s bought %d %s from %s at %s",
			receipt.Buyer, receipt.Amount, receipt.Good, receipt.Seller, receipt.UnitPrice),
		Metadata: map[string]interface{}{
			"seller_balance_before": receipt.SellerBalanceBefore.String(),
			"seller_balance_after":  receipt.SellerBalanceAfter.String(),
		},
	})
}

// RecordProduction journals the cash a factory spent on a production run
func (r *JournalRecorder) RecordProduction(ctx context.Context, production *manufacturing.Production) {
	consumed := make(map[string]interface{}, len(production.Consumed))
	for _, req := range production.Consumed {
		consumed[req.Material] = req.Units
	}

	r.send(ctx, &RecordTransactionCommand{
		TransactionType: string(ledger.TransactionTypeManufacture),
		Party:           production.Factory,
		Good:            production.Product,
		Quantity:        production.Amount,
		UnitPrice:       production.UnitCost,
		Total:           production.Cost,
		BalanceBefore:   production.BalanceBefore,
		BalanceAfter:    production.BalanceAfter,
		Description:     fmt.Sprintf("%s manufactured %d %s", production.Factory, production.Amount, production.Product),
		Metadata:        map[string]interface{}{"consumed": consumed},
	})
}

// RecordAdjustment journals a restock or discard; no cash moves
func (r *JournalRecorder) RecordAdjustment(
	ctx context.Context,
	transactionType ledger.TransactionType,
	holder, holderKind, good string,
	quantity int,
	balance shared.Money,
) {
	verb := "restocked"
	if transactionType == ledger.TransactionTypeDiscard {
		verb = "discarded"
	}
	r.send(ctx, &RecordTransactionCommand{
		TransactionType: string(transactionType),
		Party:           holder,
		Good:            good,
		Quantity:        quantity,
		BalanceBefore:   balance,
		BalanceAfter:    balance,
		Description:     fmt.Sprintf("%s %s %d %s", holder, verb, quantity, good),
		Metadata:        map[string]interface{}{"holder_kind": holderKind},
	})
}

func (r *JournalRecorder) send(ctx context.Context, cmd *RecordTransactionCommand) {
	logger := common.LoggerFromContext(ctx)

	if _, err := r.mediator.Send(ctx, cmd); err != nil {
		// Log error but don't fail the operation
		logger.Log("ERROR", "Failed to record transaction in journal", map[string]interface{}{
			"error": err.Error(),
			"type":  cmd.TransactionType,
			"party": cmd.Party,
			"good":  cmd.Good,
		})
		return
	}

	logger.Log("DEBUG", "Transaction recorded in journal", map[string]interface{}{
		"type":  cmd.TransactionType,
		"party": cmd.Party,
		"total": cmd.Total.String(),
	})
}
