package world

import (
	"github.com/andrescamacho/supplychain-go/internal/domain/customer"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/market"
	"github.com/andrescamacho/supplychain-go/internal/domain/producer"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Views are point-in-time copies taken under the world lock.
// Callers render them freely without holding the lock.

type ProducerView struct {
	Name     string
	Material string
	Cost     shared.Money
}

type DesignView struct {
	Name        string
	Cost        shared.Money
	Ingredients []manufacturing.Ingredient
}

type FactoryView struct {
	Name      string
	Balance   shared.Money
	Designs   []DesignView
	Materials map[string]int
	Products  map[string]int
}

type MarketView struct {
	Name    string
	Balance shared.Money
	Stock   map[string]int
	Prices  map[string]shared.Money
}

type CustomerView struct {
	Name      string
	Balance   shared.Money
	Inventory map[string]int
}

func producerView(p *producer.Producer) ProducerView {
	return ProducerView{Name: p.Name(), Material: p.Material(), Cost: p.Cost()}
}

func factoryView(f *manufacturing.Factory) FactoryView {
	designs := f.Designs()
	views := make([]DesignView, len(designs))
	for i, d := range designs {
		views[i] = DesignView{Name: d.Name(), Cost: d.Cost(), Ingredients: d.Ingredients()}
	}
	return FactoryView{
		Name:      f.Name(),
		Balance:   f.Balance(),
		Designs:   views,
		Materials: f.Materials().Snapshot(),
		Products:  f.Inventory().Snapshot(),
	}
}

func marketView(m *market.Market) MarketView {
	return MarketView{
		Name:    m.Name(),
		Balance: m.Balance(),
		Stock:   m.Inventory().Snapshot(),
		Prices:  m.Prices(),
	}
}

func customerView(c *customer.Customer) CustomerView {
	return CustomerView{Name: c.Name(), Balance: c.Balance(), Inventory: c.Inventory().Snapshot()}
}
