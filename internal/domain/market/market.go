package market

import (
	"sort"
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Market buys finished goods from factories and sells them to customers at its ask prices.
type Market struct {
	name string
	shared.Account

	stock  *shared.Stock
	prices map[string]shared.Money
}

// NewMarket creates a market with empty shelves and no prices
func NewMarket(name string, balance shared.Money) (*Market, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewInvalidInputError("name", "market name cannot be empty")
	}
	account, err := shared.NewAccount(name, balance)
	if err != nil {
		return nil, err
	}

	return &Market{
		name:    name,
		Account: account,
		stock:   shared.NewStock(name),
		prices:  make(map[string]shared.Money),
	}, nil
}

func (m *Market) Name() string {
	return m.name
}

func (m *Market) Inventory() *shared.Stock {
	return m.stock
}

// Offers reports whether the market has ever stocked the good
func (m *Market) Offers(good string) bool {
	return m.stock.Has(good)
}

// SetPrice overwrites the ask price for a good. No price history is kept.
func (m *Market) SetPrice(good string, price shared.Money) error {
	if strings.TrimSpace(good) == "" {
		return shared.NewInvalidInputError("good", "good name cannot be empty")
	}
	if !price.IsPositive() {
		return shared.NewInvalidPriceError(good, price)
	}
	m.prices[good] = price
	return nil
}

// Price returns the ask price, or zero when unset. Zero means "not for sale".
func (m *Market) Price(good string) shared.Money {
	return m.prices[good]
}

// Prices returns a copy of the price list
func (m *Market) Prices() map[string]shared.Money {
	prices := make(map[string]shared.Money, len(m.prices))
	for good, price := range m.prices {
		prices[good] = price
	}
	return prices
}

// PricedGoods lists goods with an ask price, alphabetically
func (m *Market) PricedGoods() []string {
	goods := make([]string, 0, len(m.prices))
	for good := range m.prices {
		goods = append(goods, good)
	}
	sort.Strings(goods)
	return goods
}

func (m *Market) String() string {
	return m.name + " (Balance: " + m.Balance().String() + ")"
}
