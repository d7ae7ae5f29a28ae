package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

var now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func money(units int64) shared.Money {
	return shared.MoneyFromInt(units)
}

func purchase(buyer, seller string, quantity int, price, before int64) TransactionParams {
	total := money(price).Times(quantity)
	return TransactionParams{
		Timestamp:     now,
		Type:          TransactionTypeCustomerPurchase,
		Party:         buyer,
		Counterparty:  seller,
		Good:          "Chair",
		Quantity:      quantity,
		UnitPrice:     money(price),
		Total:         total,
		BalanceBefore: money(before),
		BalanceAfter:  money(before).Sub(total),
	}
}

func TestNewTransaction_Purchase(t *testing.T) {
	tx, err := NewTransaction(purchase("John", "Downtown Mall", 2, 120, 1000))

	require.NoError(t, err)
	assert.False(t, tx.ID().IsZero())
	assert.Equal(t, CategoryRetail, tx.Category())
	assert.Equal(t, "240.00", tx.Total().String())
	assert.Equal(t, "760.00", tx.BalanceAfter().String())
	assert.True(t, tx.Involves("Downtown Mall"))
	assert.False(t, tx.Involves("Jane"))
}

func TestNewTransaction_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *TransactionParams)
		field  string
	}{
		{name: "empty party", mutate: func(p *TransactionParams) { p.Party = "" }, field: "party"},
		{name: "unknown type", mutate: func(p *TransactionParams) { p.Type = "GIFT" }, field: "transaction_type"},
		{name: "zero quantity", mutate: func(p *TransactionParams) { p.Quantity = 0 }, field: "quantity"},
		{name: "empty good", mutate: func(p *TransactionParams) { p.Good = " " }, field: "good"},
		{name: "total mismatch", mutate: func(p *TransactionParams) { p.Total = money(1) }, field: "total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := purchase("John", "Downtown Mall", 2, 120, 1000)
			tt.mutate(&params)

			_, err := NewTransaction(params)

			var invalid *ErrInvalidTransaction
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.field, invalid.Field)
		})
	}
}

func TestNewTransaction_BalanceInvariant(t *testing.T) {
	params := purchase("John", "Downtown Mall", 1, 120, 1000)
	params.BalanceAfter = money(1000)

	_, err := NewTransaction(params)

	var violation *ErrBalanceInvariantViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "880.00", violation.Expected.String())
}

func TestNewTransaction_AdjustmentsMoveNoCash(t *testing.T) {
	params := TransactionParams{
		Timestamp:     now,
		Type:          TransactionTypeDiscard,
		Party:         "John",
		Good:          "Chair",
		Quantity:      1,
		BalanceBefore: money(500),
		BalanceAfter:  money(500),
	}

	tx, err := NewTransaction(params)
	require.NoError(t, err)
	assert.Equal(t, CategoryInventoryAdjustment, tx.Category())

	params.Total = money(10)
	_, err = NewTransaction(params)
	assert.Error(t, err)
}

func TestTransaction_MetadataIsACopy(t *testing.T) {
	params := purchase("John", "Downtown Mall", 1, 120, 1000)
	params.Metadata = map[string]interface{}{"source": "shell"}
	tx, err := NewTransaction(params)
	require.NoError(t, err)

	tx.Metadata()["source"] = "changed"

	assert.Equal(t, "shell", tx.Metadata()["source"])
}

func TestParseTransactionID(t *testing.T) {
	id := NewTransactionID()

	parsed, err := ParseTransactionID(id.String())
	require.NoError(t, err)
	assert.True(t, parsed.Equals(id))
	assert.Len(t, id.Short(), 8)

	_, err = ParseTransactionID("not-a-uuid")
	assert.Error(t, err)
	_, err = ParseTransactionID("")
	assert.Error(t, err)
}

func TestParseTypeAndCategory(t *testing.T) {
	for _, tt := range AllTransactionTypes() {
		parsed, err := ParseTransactionType(tt.String())
		require.NoError(t, err)
		category, err := parsed.ToCategory()
		require.NoError(t, err)
		assert.True(t, category.IsValid())
	}

	_, err := ParseCategory("TAXES")
	assert.Error(t, err)
}
