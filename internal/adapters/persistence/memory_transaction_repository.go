package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
)

// MemoryTransactionRepository keeps the journal in process memory.
// It is the default backend; the journal then lives as long as the world does.
type MemoryTransactionRepository struct {
	mu           sync.RWMutex
	transactions []*ledger.Transaction
	byID         map[string]int
}

var _ ledger.TransactionRepository = (*MemoryTransactionRepository)(nil)

func NewMemoryTransactionRepository() *MemoryTransactionRepository {
	return &MemoryTransactionRepository{
		byID: make(map[string]int),
	}
}

func (r *MemoryTransactionRepository) Create(ctx context.Context, transaction *ledger.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[transaction.ID().String()] = len(r.transactions)
	r.transactions = append(r.transactions, transaction)
	return nil
}

func (r *MemoryTransactionRepository) FindByID(ctx context.Context, id ledger.TransactionID) (*ledger.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.byID[id.String()]
	if !ok {
		return nil, &ledger.ErrTransactionNotFound{ID: id.String()}
	}
	return r.transactions[i], nil
}

func (r *MemoryTransactionRepository) FindByParty(ctx context.Context, party string, opts ledger.QueryOptions) ([]*ledger.Transaction, error) {
	matched := r.filter(party, opts)

	// Entries are stored in recording order; for DESC the latest recorded wins ties
	if opts.OrderBy != "timestamp ASC" {
		for i, j := 0, len(matched)-1; i < j; i, j = i+1, j-1 {
			matched[i], matched[j] = matched[j], matched[i]
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Timestamp().After(matched[j].Timestamp())
		})
	} else {
		sort.SliceStable(matched, func(i, j int) bool {
			return matched[i].Timestamp().Before(matched[j].Timestamp())
		})
	}

	if opts.Offset > 0 {
		if opts.Offset >= len(matched) {
			return []*ledger.Transaction{}, nil
		}
		matched = matched[opts.Offset:]
	}
	if opts.Limit > 0 && len(matched) > opts.Limit {
		matched = matched[:opts.Limit]
	}
	return matched, nil
}

func (r *MemoryTransactionRepository) CountByParty(ctx context.Context, party string, opts ledger.QueryOptions) (int, error) {
	return len(r.filter(party, opts)), nil
}

func (r *MemoryTransactionRepository) filter(party string, opts ledger.QueryOptions) []*ledger.Transaction {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]*ledger.Transaction, 0, len(r.transactions))
	for _, tx := range r.transactions {
		if party != "" && !tx.Involves(party) {
			continue
		}
		if opts.StartDate != nil && tx.Timestamp().Before(*opts.StartDate) {
			continue
		}
		if opts.EndDate != nil && tx.Timestamp().After(*opts.EndDate) {
			continue
		}
		if opts.Category != nil && tx.Category() != *opts.Category {
			continue
		}
		if opts.TransactionType != nil && tx.TransactionType() != *opts.TransactionType {
			continue
		}
		if opts.Good != nil && tx.Good() != *opts.Good {
			continue
		}
		matched = append(matched, tx)
	}
	return matched
}
