package queries

import (
	"context"
	"fmt"
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// GetStatementQuery summarizes revenue and expenses of one party from the journal
type GetStatementQuery struct {
	Party string
}

type GetStatementResponse struct {
	Statement *ledger.Statement
}

type GetStatementHandler struct {
	transactionRepo ledger.TransactionRepository
}

func NewGetStatementHandler(transactionRepo ledger.TransactionRepository) *GetStatementHandler {
	return &GetStatementHandler{transactionRepo: transactionRepo}
}

func (h *GetStatementHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetStatementQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetStatementQuery")
	}
	if strings.TrimSpace(query.Party) == "" {
		return nil, shared.NewInvalidInputError("party", "party is required")
	}

	// No limit: the statement covers the full history
	opts := ledger.DefaultQueryOptions()
	opts.Limit = 0
	opts.OrderBy = "timestamp ASC"

	transactions, err := h.transactionRepo.FindByParty(ctx, query.Party, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	return &GetStatementResponse{Statement: ledger.BuildStatement(query.Party, transactions)}, nil
}
