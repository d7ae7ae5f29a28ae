package trading_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/domain/customer"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/market"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/trading"
)

func money(units int64) shared.Money {
	return shared.MoneyFromInt(units)
}

func newMarket(t *testing.T, balance int64, chairs int, price int64) *market.Market {
	t.Helper()
	m, err := market.NewMarket("Downtown Mall", money(balance))
	require.NoError(t, err)
	if chairs > 0 {
		require.NoError(t, m.Inventory().Add("Chair", chairs))
	}
	if price > 0 {
		require.NoError(t, m.SetPrice("Chair", money(price)))
	}
	return m
}

func newCustomer(t *testing.T, balance int64) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer("John", money(balance))
	require.NoError(t, err)
	return c
}

func newFactory(t *testing.T, chairs int) *manufacturing.Factory {
	t.Helper()
	f, err := manufacturing.NewFactory("Furniture Factory", money(2000))
	require.NoError(t, err)
	design, err := manufacturing.NewProductDesign("Chair", money(50), nil)
	require.NoError(t, err)
	require.NoError(t, f.AddDesign(design))
	if chairs > 0 {
		require.NoError(t, f.Inventory().Add("Chair", chairs))
	}
	return f
}

func TestExecute_CustomerBuysFromMarket(t *testing.T) {
	// Arrange
	m := newMarket(t, 5000, 3, 120)
	c := newCustomer(t, 1000)

	// Act
	receipt, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 1})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, m.Inventory().Units("Chair"))
	assert.Equal(t, 1, c.Inventory().Units("Chair"))
	assert.Equal(t, "5120.00", m.Balance().String())
	assert.Equal(t, "880.00", c.Balance().String())

	assert.Equal(t, "Downtown Mall", receipt.Seller)
	assert.Equal(t, "John", receipt.Buyer)
	assert.Equal(t, "120.00", receipt.UnitPrice.String())
	assert.Equal(t, "120.00", receipt.Total.String())
	assert.Equal(t, "1000.00", receipt.BuyerBalanceBefore.String())
	assert.Equal(t, "880.00", receipt.BuyerBalanceAfter.String())
}

func TestExecute_ConservesCashAndGoods(t *testing.T) {
	m := newMarket(t, 5000, 10, 75)
	c := newCustomer(t, 1000)
	cashBefore := m.Balance().Add(c.Balance())

	_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 4})
	require.NoError(t, err)

	assert.True(t, m.Balance().Add(c.Balance()).Equal(cashBefore))
	assert.Equal(t, 10, m.Inventory().Units("Chair")+c.Inventory().Units("Chair"))
}

func TestExecute_InsufficientStockChangesNothing(t *testing.T) {
	// Arrange
	m := newMarket(t, 5000, 1, 120)
	c := newCustomer(t, 1000)

	// Act
	_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 2})

	// Assert
	var stockErr *shared.InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, 2, stockErr.Requested)
	assert.Equal(t, 1, stockErr.Available)

	assert.Equal(t, 1, m.Inventory().Units("Chair"))
	assert.Equal(t, 0, c.Inventory().Units("Chair"))
	assert.Equal(t, "5000.00", m.Balance().String())
	assert.Equal(t, "1000.00", c.Balance().String())
}

func TestExecute_InsufficientFundsChangesNothing(t *testing.T) {
	m := newMarket(t, 5000, 5, 120)
	c := newCustomer(t, 100)

	_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 1})

	var fundsErr *shared.InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, "John", fundsErr.Party)
	assert.Equal(t, "120.00", fundsErr.Required.String())
	assert.Equal(t, "100.00", fundsErr.Available.String())

	assert.Equal(t, 5, m.Inventory().Units("Chair"))
	assert.False(t, c.Inventory().Has("Chair"))
	assert.Equal(t, "100.00", c.Balance().String())
}

func TestExecute_FailedTradeCanBeRetried(t *testing.T) {
	m := newMarket(t, 5000, 5, 120)
	c := newCustomer(t, 100)

	for i := 0; i < 3; i++ {
		_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 1})
		assert.Equal(t, shared.KindInsufficientFunds, shared.KindOf(err))
	}

	c.Credit(money(20))
	_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 1})

	require.NoError(t, err)
	assert.Equal(t, 4, m.Inventory().Units("Chair"))
	assert.True(t, c.Balance().IsZero())
}

func TestExecute_PriceNotSet(t *testing.T) {
	m := newMarket(t, 5000, 5, 0)
	c := newCustomer(t, 1000)

	_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: 1, UnitPrice: money(10)})

	assert.Equal(t, shared.KindPriceNotSet, shared.KindOf(err), "a market ignores the order price")
	assert.Equal(t, 5, m.Inventory().Units("Chair"))
}

func TestExecute_CheckOrder(t *testing.T) {
	tests := []struct {
		name     string
		chairs   int
		price    int64
		order    trading.Order
		budget   int64
		wantKind shared.ErrorKind
	}{
		{
			name:     "amount before price",
			order:    trading.Order{Good: "Chair", Amount: 0},
			wantKind: shared.KindInvalidInput,
		},
		{
			name:     "price before stock",
			chairs:   0,
			order:    trading.Order{Good: "Chair", Amount: 1},
			wantKind: shared.KindPriceNotSet,
		},
		{
			name:     "unknown good",
			price:    10,
			order:    trading.Order{Good: "Chair", Amount: 1},
			wantKind: shared.KindProductUnavailable,
		},
		{
			name:     "stock before funds",
			chairs:   1,
			price:    10,
			order:    trading.Order{Good: "Chair", Amount: 2},
			wantKind: shared.KindInsufficientStock,
		},
		{
			name:     "funds last",
			chairs:   2,
			price:    10,
			budget:   19,
			order:    trading.Order{Good: "Chair", Amount: 2},
			wantKind: shared.KindInsufficientFunds,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMarket(t, 0, tt.chairs, tt.price)
			c := newCustomer(t, tt.budget)

			_, err := trading.Execute(m, c, tt.order)

			assert.Equal(t, tt.wantKind, shared.KindOf(err))
		})
	}
}

func TestExecute_FactorySellsAtOrderPrice(t *testing.T) {
	// Arrange
	f := newFactory(t, 5)
	m := newMarket(t, 5000, 0, 0)

	// Act
	receipt, err := trading.Execute(f, m, trading.Order{Good: "Chair", Amount: 3, UnitPrice: money(80)})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "240.00", receipt.Total.String())
	assert.Equal(t, 2, f.Inventory().Units("Chair"))
	assert.Equal(t, 3, m.Inventory().Units("Chair"))
	assert.Equal(t, "2240.00", f.Balance().String())
	assert.Equal(t, "4760.00", m.Balance().String())
}

func TestExecute_FactoryRejectsMissingOrderPrice(t *testing.T) {
	f := newFactory(t, 5)
	m := newMarket(t, 5000, 0, 0)

	_, err := trading.Execute(f, m, trading.Order{Good: "Chair", Amount: 1})

	assert.Equal(t, shared.KindInvalidPrice, shared.KindOf(err))
}

func TestExecute_FactoryWithoutDesign(t *testing.T) {
	f := newFactory(t, 0)
	m := newMarket(t, 5000, 0, 0)

	_, err := trading.Execute(f, m, trading.Order{Good: "Table", Amount: 1, UnitPrice: money(10)})

	assert.Equal(t, shared.KindProductUnavailable, shared.KindOf(err))
}

func TestExecute_SelfTrade(t *testing.T) {
	m := newMarket(t, 5000, 5, 120)

	_, err := trading.Execute(m, m, trading.Order{Good: "Chair", Amount: 1})

	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
	assert.Equal(t, 5, m.Inventory().Units("Chair"))
}

func TestExecute_ExtremeAmountsChangeNothing(t *testing.T) {
	tests := []struct {
		name     string
		held     int
		chairs   int
		amount   int
		wantKind shared.ErrorKind
	}{
		{name: "buyer already holds max", held: math.MaxInt, chairs: 1, amount: 1, wantKind: shared.KindInvalidInput},
		{name: "buyer would pass max", held: math.MaxInt - 1, chairs: 2, amount: 2, wantKind: shared.KindInvalidInput},
		{name: "max amount against small stock", chairs: 3, amount: math.MaxInt, wantKind: shared.KindInsufficientStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMarket(t, 5000, tt.chairs, 1)
			c := newCustomer(t, 1000)
			if tt.held > 0 {
				require.NoError(t, c.Inventory().Add("Chair", tt.held))
			}

			_, err := trading.Execute(m, c, trading.Order{Good: "Chair", Amount: tt.amount})

			assert.Equal(t, tt.wantKind, shared.KindOf(err))
			assert.Equal(t, tt.chairs, m.Inventory().Units("Chair"))
			assert.Equal(t, tt.held, c.Inventory().Units("Chair"))
			assert.Equal(t, "5000.00", m.Balance().String())
			assert.Equal(t, "1000.00", c.Balance().String())
		})
	}
}
