package world

import (
	"sync"

	"github.com/andrescamacho/supplychain-go/internal/domain/customer"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/market"
	"github.com/andrescamacho/supplychain-go/internal/domain/producer"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/trading"
)

// World owns every entity of one simulation. All operations run inside a single
// critical section, so a trade or manufacture is never observed half applied.
type World struct {
	mu sync.Mutex

	producers *Registry[*producer.Producer]
	factories *Registry[*manufacturing.Factory]
	markets   *Registry[*market.Market]
	customers *Registry[*customer.Customer]
}

func New() *World {
	return &World{
		producers: NewRegistry[*producer.Producer]("producer"),
		factories: NewRegistry[*manufacturing.Factory]("factory"),
		markets:   NewRegistry[*market.Market]("market"),
		customers: NewRegistry[*customer.Customer]("customer"),
	}
}

// Registration

func (w *World) AddProducer(name, material string, cost shared.Money) (ProducerView, error) {
	p, err := producer.NewProducer(name, material, cost)
	if err != nil {
		return ProducerView{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.producers.Add(p); err != nil {
		return ProducerView{}, err
	}
	return producerView(p), nil
}

func (w *World) AddFactory(name string, balance shared.Money) (FactoryView, error) {
	f, err := manufacturing.NewFactory(name, balance)
	if err != nil {
		return FactoryView{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.factories.Add(f); err != nil {
		return FactoryView{}, err
	}
	return factoryView(f), nil
}

func (w *World) AddMarket(name string, balance shared.Money) (MarketView, error) {
	m, err := market.NewMarket(name, balance)
	if err != nil {
		return MarketView{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.markets.Add(m); err != nil {
		return MarketView{}, err
	}
	return marketView(m), nil
}

func (w *World) AddCustomer(name string, balance shared.Money) (CustomerView, error) {
	c, err := customer.NewCustomer(name, balance)
	if err != nil {
		return CustomerView{}, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.customers.Add(c); err != nil {
		return CustomerView{}, err
	}
	return customerView(c), nil
}

// Listing

func (w *World) Producers() []ProducerView {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := w.producers.List()
	views := make([]ProducerView, len(items))
	for i, p := range items {
		views[i] = producerView(p)
	}
	return views
}

func (w *World) Factories() []FactoryView {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := w.factories.List()
	views := make([]FactoryView, len(items))
	for i, f := range items {
		views[i] = factoryView(f)
	}
	return views
}

func (w *World) Markets() []MarketView {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := w.markets.List()
	views := make([]MarketView, len(items))
	for i, m := range items {
		views[i] = marketView(m)
	}
	return views
}

func (w *World) Customers() []CustomerView {
	w.mu.Lock()
	defer w.mu.Unlock()
	items := w.customers.List()
	views := make([]CustomerView, len(items))
	for i, c := range items {
		views[i] = customerView(c)
	}
	return views
}

// Lookup

func (w *World) Producer(name string) (ProducerView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, err := w.producers.Get(name)
	if err != nil {
		return ProducerView{}, err
	}
	return producerView(p), nil
}

func (w *World) Factory(name string) (FactoryView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, err := w.factories.Get(name)
	if err != nil {
		return FactoryView{}, err
	}
	return factoryView(f), nil
}

func (w *World) Market(name string) (MarketView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.markets.Get(name)
	if err != nil {
		return MarketView{}, err
	}
	return marketView(m), nil
}

func (w *World) Customer(name string) (CustomerView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	c, err := w.customers.Get(name)
	if err != nil {
		return CustomerView{}, err
	}
	return customerView(c), nil
}

// Producer and factory setup

func (w *World) UpdateProducerCost(name string, cost shared.Money) (ProducerView, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	p, err := w.producers.Get(name)
	if err != nil {
		return ProducerView{}, err
	}
	if err := p.UpdateCost(cost); err != nil {
		return ProducerView{}, err
	}
	return producerView(p), nil
}

func (w *World) AddDesign(factoryName string, design *manufacturing.ProductDesign) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, err := w.factories.Get(factoryName)
	if err != nil {
		return err
	}
	return f.AddDesign(design)
}

func (w *World) ReceiveMaterials(factoryName, material string, amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, err := w.factories.Get(factoryName)
	if err != nil {
		return err
	}
	return f.ReceiveMaterials(material, amount)
}

// Operations

func (w *World) Manufacture(factoryName, designName string, amount int) (*manufacturing.Production, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, err := w.factories.Get(factoryName)
	if err != nil {
		return nil, err
	}
	return f.Manufacture(designName, amount)
}

// SellToMarket has a factory sell finished goods to a market.
// A zero unitPrice falls back to the design's production cost.
func (w *World) SellToMarket(factoryName, marketName, good string, amount int, unitPrice shared.Money) (*trading.Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	f, err := w.factories.Get(factoryName)
	if err != nil {
		return nil, err
	}
	m, err := w.markets.Get(marketName)
	if err != nil {
		return nil, err
	}
	if unitPrice.IsZero() {
		if design, err := f.Design(good); err == nil {
			unitPrice = design.Cost()
		}
	}
	return trading.Execute(f, m, trading.Order{Good: good, Amount: amount, UnitPrice: unitPrice})
}

// SellToCustomer has a market sell to a customer at the market's ask price
func (w *World) SellToCustomer(marketName, customerName, good string, amount int) (*trading.Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.markets.Get(marketName)
	if err != nil {
		return nil, err
	}
	c, err := w.customers.Get(customerName)
	if err != nil {
		return nil, err
	}
	return trading.Execute(m, c, trading.Order{Good: good, Amount: amount})
}

// Trade runs an arbitrary trade between parties the caller already holds
// (e.g. in tests), still inside the world's critical section.
func (w *World) Trade(seller trading.Seller, buyer trading.Buyer, order trading.Order) (*trading.Receipt, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return trading.Execute(seller, buyer, order)
}

func (w *World) SetPrice(marketName, good string, price shared.Money) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.markets.Get(marketName)
	if err != nil {
		return err
	}
	return m.SetPrice(good, price)
}

// Price returns the ask price, zero when unset
func (w *World) Price(marketName, good string) (shared.Money, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	m, err := w.markets.Get(marketName)
	if err != nil {
		return shared.Money{}, err
	}
	return m.Price(good), nil
}

// Discard

// HolderKind selects which stock Discard draws from
type HolderKind string

const (
	HolderCustomer        HolderKind = "customer"
	HolderFactoryProducts HolderKind = "factory-products"
	HolderFactoryMaterial HolderKind = "factory-materials"
	HolderMarket          HolderKind = "market"
)

func (w *World) Discard(kind HolderKind, holder, good string, amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch kind {
	case HolderCustomer:
		c, err := w.customers.Get(holder)
		if err != nil {
			return err
		}
		return c.Discard(good, amount)
	case HolderFactoryProducts:
		f, err := w.factories.Get(holder)
		if err != nil {
			return err
		}
		return f.DiscardProducts(good, amount)
	case HolderFactoryMaterial:
		f, err := w.factories.Get(holder)
		if err != nil {
			return err
		}
		return f.DiscardMaterials(good, amount)
	case HolderMarket:
		m, err := w.markets.Get(holder)
		if err != nil {
			return err
		}
		return m.Inventory().Discard(good, amount)
	default:
		return shared.NewInvalidInputError("holder", "unknown holder kind "+string(kind))
	}
}

// Restock adds units to a holder's stock without moving cash. Used for seeding
// and for topping up goods outside the trade path.
func (w *World) Restock(kind HolderKind, holder, good string, amount int) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch kind {
	case HolderCustomer:
		c, err := w.customers.Get(holder)
		if err != nil {
			return err
		}
		return c.Inventory().Add(good, amount)
	case HolderFactoryProducts:
		f, err := w.factories.Get(holder)
		if err != nil {
			return err
		}
		return f.StockProducts(good, amount)
	case HolderFactoryMaterial:
		f, err := w.factories.Get(holder)
		if err != nil {
			return err
		}
		return f.ReceiveMaterials(good, amount)
	case HolderMarket:
		m, err := w.markets.Get(holder)
		if err != nil {
			return err
		}
		return m.Inventory().Add(good, amount)
	default:
		return shared.NewInvalidInputError("holder", "unknown holder kind "+string(kind))
	}
}

// ParseHolderKind accepts the holder names used on the command line
func ParseHolderKind(s string) (HolderKind, error) {
	switch k := HolderKind(s); k {
	case HolderCustomer, HolderFactoryProducts, HolderFactoryMaterial, HolderMarket:
		return k, nil
	default:
		return "", shared.NewInvalidInputError("holder", "unknown holder kind "+s)
	}
}
