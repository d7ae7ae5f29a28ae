package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// RecordTransactionCommand represents a command to record a journal entry
type RecordTransactionCommand struct {
	TransactionType string
	Party           string
	Counterparty    string
	Good            string
	Quantity        int
	UnitPrice       shared.Money
	Total           shared.Money
	BalanceBefore   shared.Money
	BalanceAfter    shared.Money
	Description     string
	Metadata        map[string]interface{}
	Timestamp       *time.Time // Optional: if provided, use this timestamp; otherwise use current time
}

// RecordTransactionResponse represents the result of recording a transaction
type RecordTransactionResponse struct {
	TransactionID string
	Timestamp     time.Time
}

// RecordTransactionHandler handles the RecordTransaction command
type RecordTransactionHandler struct {
	transactionRepo ledger.TransactionRepository
	clock           shared.Clock
}

// NewRecordTransactionHandler creates a new RecordTransactionHandler
func NewRecordTransactionHandler(
	transactionRepo ledger.TransactionRepository,
	clock shared.Clock,
) *RecordTransactionHandler {
	// Default to real clock if not provided
	if clock == nil {
		clock = shared.NewRealClock()
	}

	return &RecordTransactionHandler{
		transactionRepo: transactionRepo,
		clock:           clock,
	}
}

// Handle executes the RecordTransaction command
func (h *RecordTransactionHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*RecordTransactionCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *RecordTransactionCommand")
	}

	transactionType, err := ledger.ParseTransactionType(cmd.TransactionType)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction type: %w", err)
	}

	timestamp := h.clock.Now()
	if cmd.Timestamp != nil {
		timestamp = *cmd.Timestamp
	}

	transaction, err := ledger.NewTransaction(ledger.TransactionParams{
		Timestamp:     timestamp,
		Type:          transactionType,
		Party:         cmd.Party,
		Counterparty:  cmd.Counterparty,
		Good:          cmd.Good,
		Quantity:      cmd.Quantity,
		UnitPrice:     cmd.UnitPrice,
		Total:         cmd.Total,
		BalanceBefore: cmd.BalanceBefore,
		BalanceAfter:  cmd.BalanceAfter,
		Description:   cmd.Description,
		Metadata:      cmd.Metadata,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := h.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to persist transaction: %w", err)
	}

	return &RecordTransactionResponse{
		TransactionID: transaction.ID().String(),
		Timestamp:     transaction.Timestamp(),
	}, nil
}
