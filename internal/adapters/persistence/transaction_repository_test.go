package persistence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/adapters/persistence"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/database"
)

var start = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// repositories runs every test against both journal backends
func repositories(t *testing.T) map[string]ledger.TransactionRepository {
	t.Helper()
	db, err := database.NewTestConnection()
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	return map[string]ledger.TransactionRepository{
		"memory": persistence.NewMemoryTransactionRepository(),
		"gorm":   persistence.NewGormTransactionRepository(db),
	}
}

func trade(t *testing.T, at time.Time, txType ledger.TransactionType, buyer, seller, good string, quantity int, price int64) *ledger.Transaction {
	t.Helper()
	total := shared.MoneyFromInt(price).Times(quantity)
	tx, err := ledger.NewTransaction(ledger.TransactionParams{
		Timestamp:     at,
		Type:          txType,
		Party:         buyer,
		Counterparty:  seller,
		Good:          good,
		Quantity:      quantity,
		UnitPrice:     shared.MoneyFromInt(price),
		Total:         total,
		BalanceBefore: shared.MoneyFromInt(10000),
		BalanceAfter:  shared.MoneyFromInt(10000).Sub(total),
		Description:   buyer + " bought " + good,
		Metadata:      map[string]interface{}{"source": "test"},
	})
	require.NoError(t, err)
	return tx
}

// seedJournal records three trades one minute apart
func seedJournal(t *testing.T, repo ledger.TransactionRepository) []*ledger.Transaction {
	t.Helper()
	txs := []*ledger.Transaction{
		trade(t, start, ledger.TransactionTypeMarketPurchase, "Downtown Mall", "Furniture Factory", "Chair", 5, 50),
		trade(t, start.Add(time.Minute), ledger.TransactionTypeCustomerPurchase, "John", "Downtown Mall", "Chair", 1, 120),
		trade(t, start.Add(2*time.Minute), ledger.TransactionTypeCustomerPurchase, "Alice", "Tech Store", "Phone", 1, 400),
	}
	for _, tx := range txs {
		require.NoError(t, repo.Create(context.Background(), tx))
	}
	return txs
}

func TestTransactionRepository_CreateAndFindByID(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			// Arrange
			txs := seedJournal(t, repo)

			// Act
			found, err := repo.FindByID(context.Background(), txs[1].ID())

			// Assert
			require.NoError(t, err)
			assert.True(t, found.ID().Equals(txs[1].ID()))
			assert.Equal(t, ledger.TransactionTypeCustomerPurchase, found.TransactionType())
			assert.Equal(t, ledger.CategoryRetail, found.Category())
			assert.Equal(t, "John", found.Party())
			assert.Equal(t, "Downtown Mall", found.Counterparty())
			assert.Equal(t, "120.00", found.Total().String())
			assert.Equal(t, "9880.00", found.BalanceAfter().String())
			assert.True(t, found.Timestamp().Equal(start.Add(time.Minute)))
			assert.Equal(t, "test", found.Metadata()["source"])
		})
	}
}

func TestTransactionRepository_NotFound(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.FindByID(context.Background(), ledger.NewTransactionID())

			var notFound *ledger.ErrTransactionNotFound
			assert.ErrorAs(t, err, &notFound)
		})
	}
}

func TestTransactionRepository_FindByParty(t *testing.T) {
	retail := ledger.CategoryRetail
	phone := "Phone"
	cutoff := start.Add(30 * time.Second)

	tests := []struct {
		name      string
		party     string
		opts      func(*ledger.QueryOptions)
		wantGoods []string
	}{
		{name: "either side", party: "Downtown Mall", wantGoods: []string{"Chair", "Chair"}},
		{name: "everyone", party: "", wantGoods: []string{"Phone", "Chair", "Chair"}},
		{name: "category", party: "", opts: func(o *ledger.QueryOptions) { o.Category = &retail }, wantGoods: []string{"Phone", "Chair"}},
		{name: "good", party: "", opts: func(o *ledger.QueryOptions) { o.Good = &phone }, wantGoods: []string{"Phone"}},
		{name: "start date", party: "", opts: func(o *ledger.QueryOptions) { o.StartDate = &cutoff }, wantGoods: []string{"Phone", "Chair"}},
		{name: "limit and offset", party: "", opts: func(o *ledger.QueryOptions) { o.Limit = 1; o.Offset = 1 }, wantGoods: []string{"Chair"}},
		{name: "ascending", party: "", opts: func(o *ledger.QueryOptions) { o.OrderBy = "timestamp ASC"; o.Limit = 1 }, wantGoods: []string{"Chair"}},
		{name: "stranger", party: "Nobody", wantGoods: []string{}},
	}

	for name, repo := range repositories(t) {
		seedJournal(t, repo)
		for _, tt := range tests {
			t.Run(name+"/"+tt.name, func(t *testing.T) {
				opts := ledger.DefaultQueryOptions()
				if tt.opts != nil {
					tt.opts(&opts)
				}

				found, err := repo.FindByParty(context.Background(), tt.party, opts)

				require.NoError(t, err)
				goods := make([]string, len(found))
				for i, tx := range found {
					goods[i] = tx.Good()
				}
				assert.Equal(t, tt.wantGoods, goods)
			})
		}
	}
}

func TestTransactionRepository_CountIgnoresPagination(t *testing.T) {
	for name, repo := range repositories(t) {
		t.Run(name, func(t *testing.T) {
			seedJournal(t, repo)
			opts := ledger.DefaultQueryOptions()
			opts.Limit = 1

			count, err := repo.CountByParty(context.Background(), "", opts)

			require.NoError(t, err)
			assert.Equal(t, 3, count)
		})
	}
}
