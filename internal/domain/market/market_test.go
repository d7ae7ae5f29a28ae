package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

func TestMarket_SetPriceOverwrites(t *testing.T) {
	m, err := NewMarket("Downtown Mall", shared.MoneyFromInt(5000))
	require.NoError(t, err)

	require.NoError(t, m.SetPrice("Chair", shared.MoneyFromInt(120)))
	require.NoError(t, m.SetPrice("Chair", shared.MoneyFromInt(130)))

	assert.Equal(t, "130.00", m.Price("Chair").String())
	assert.Equal(t, []string{"Chair"}, m.PricedGoods())
}

func TestMarket_SetPriceRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name     string
		good     string
		price    shared.Money
		wantKind shared.ErrorKind
	}{
		{name: "zero", good: "Chair", price: shared.Zero(), wantKind: shared.KindInvalidPrice},
		{name: "negative", good: "Chair", price: shared.MoneyFromInt(-3), wantKind: shared.KindInvalidPrice},
		{name: "blank good", good: " ", price: shared.MoneyFromInt(3), wantKind: shared.KindInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMarket("Tech Store", shared.Zero())
			require.NoError(t, err)
			require.NoError(t, m.SetPrice("Chair", shared.MoneyFromInt(90)))

			err = m.SetPrice(tt.good, tt.price)

			assert.Equal(t, tt.wantKind, shared.KindOf(err))
			assert.Equal(t, "90.00", m.Price("Chair").String(), "previous price survives a rejected update")
		})
	}
}

func TestMarket_PriceUnsetIsZero(t *testing.T) {
	m, err := NewMarket("Tech Store", shared.Zero())
	require.NoError(t, err)

	assert.True(t, m.Price("Phone").IsZero())
	assert.Empty(t, m.PricedGoods())
}

func TestMarket_PricesIsACopy(t *testing.T) {
	m, err := NewMarket("Tech Store", shared.Zero())
	require.NoError(t, err)
	require.NoError(t, m.SetPrice("Phone", shared.MoneyFromInt(400)))

	prices := m.Prices()
	prices["Phone"] = shared.MoneyFromInt(1)

	assert.Equal(t, "400.00", m.Price("Phone").String())
}

func TestMarket_OffersFollowsStockEntries(t *testing.T) {
	m, err := NewMarket("Downtown Mall", shared.Zero())
	require.NoError(t, err)
	assert.False(t, m.Offers("Chair"))

	require.NoError(t, m.Inventory().Add("Chair", 1))
	require.NoError(t, m.Inventory().Remove("Chair", 1))

	assert.True(t, m.Offers("Chair"), "a sold-out good keeps its entry")
}

func TestNewMarket_Validation(t *testing.T) {
	_, err := NewMarket("", shared.Zero())
	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))

	_, err = NewMarket("Mall", shared.MoneyFromInt(-1))
	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
}
