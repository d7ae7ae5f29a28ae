package ledger

import (
	"context"
	"time"
)

// TransactionRepository defines persistence operations for transactions
type TransactionRepository interface {
	// Create persists a new transaction
	Create(ctx context.Context, transaction *Transaction) error

	// FindByID retrieves a transaction by its ID
	FindByID(ctx context.Context, id TransactionID) (*Transaction, error)

	// FindByParty retrieves transactions where party is either side, with optional filtering.
	// An empty party matches every transaction.
	FindByParty(ctx context.Context, party string, opts QueryOptions) ([]*Transaction, error)

	// CountByParty returns the count of transactions matching the criteria, ignoring pagination
	CountByParty(ctx context.Context, party string, opts QueryOptions) (int, error)
}

// QueryOptions defines filtering and pagination options for transaction queries
type QueryOptions struct {
	// Date range filtering
	StartDate *time.Time
	EndDate   *time.Time

	Category        *Category
	TransactionType *TransactionType
	Good            *string

	// Pagination
	Limit  int
	Offset int

	// Sorting
	OrderBy string // "timestamp ASC" or "timestamp DESC" (default DESC)
}

// DefaultQueryOptions returns default query options
func DefaultQueryOptions() QueryOptions {
	return QueryOptions{
		Limit:   50,
		Offset:  0,
		OrderBy: "timestamp DESC",
	}
}
