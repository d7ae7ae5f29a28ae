package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStatement(t *testing.T) {
	// Arrange
	wholesale := purchase("Downtown Mall", "Furniture Factory", 5, 10, 1000)
	wholesale.Type = TransactionTypeMarketPurchase
	retail := purchase("John", "Downtown Mall", 2, 120, 1000)
	unrelated := purchase("Jane", "Tech Store", 1, 400, 1000)

	var transactions []*Transaction
	for _, p := range []TransactionParams{wholesale, retail, unrelated} {
		tx, err := NewTransaction(p)
		require.NoError(t, err)
		transactions = append(transactions, tx)
	}

	// Act
	statement := BuildStatement("Downtown Mall", transactions)

	// Assert
	assert.Equal(t, 2, statement.Transactions)
	assert.Equal(t, "240.00", statement.Revenue.String())
	assert.Equal(t, "50.00", statement.Expenses.String())
	assert.Equal(t, "190.00", statement.Net().String())
	assert.Equal(t, "-50.00", statement.ByCategory[CategoryWholesale].String())
	assert.Equal(t, "240.00", statement.ByCategory[CategoryRetail].String())
}

func TestBuildStatement_Empty(t *testing.T) {
	statement := BuildStatement("Nobody", nil)

	assert.Zero(t, statement.Transactions)
	assert.True(t, statement.Net().IsZero())
	assert.Empty(t, statement.ByCategory)
}
