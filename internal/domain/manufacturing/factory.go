package manufacturing

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Factory turns raw materials and cash into finished goods following its product designs.
// Every factory can produce; there is no separate "extended" factory type.
type Factory struct {
	name string
	shared.Account

	designs     []*ProductDesign
	designIndex map[string]int

	materials *shared.Stock // raw materials
	products  *shared.Stock // finished goods
}

// NewFactory creates a factory with no designs and empty stocks
func NewFactory(name string, balance shared.Money) (*Factory, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewInvalidInputError("name", "factory name cannot be empty")
	}
	account, err := shared.NewAccount(name, balance)
	if err != nil {
		return nil, err
	}

	return &Factory{
		name:        name,
		Account:     account,
		designIndex: make(map[string]int),
		materials:   shared.NewStock(name),
		products:    shared.NewStock(name),
	}, nil
}

func (f *Factory) Name() string {
	return f.name
}

// Inventory is the finished-goods stock the factory sells from
func (f *Factory) Inventory() *shared.Stock {
	return f.products
}

// Materials is the raw-material stock consumed by production
func (f *Factory) Materials() *shared.Stock {
	return f.materials
}

// Offers reports whether the factory manufactures the good at all
func (f *Factory) Offers(good string) bool {
	_, ok := f.designIndex[good]
	return ok
}

// AddDesign registers a design; names are unique within the factory
func (f *Factory) AddDesign(design *ProductDesign) error {
	if design == nil {
		return shared.NewInvalidInputError("design", "product design cannot be nil")
	}
	if f.Offers(design.Name()) {
		return shared.NewDuplicateNameError("design", design.Name())
	}
	f.designIndex[design.Name()] = len(f.designs)
	f.designs = append(f.designs, design)
	return nil
}

// Design looks up a design by product name
func (f *Factory) Design(name string) (*ProductDesign, error) {
	i, ok := f.designIndex[name]
	if !ok {
		return nil, shared.NewProductUnavailableError(f.name, name)
	}
	return f.designs[i], nil
}

// Designs returns designs in the order they were added
func (f *Factory) Designs() []*ProductDesign {
	designs := make([]*ProductDesign, len(f.designs))
	copy(designs, f.designs)
	return designs
}

// ReceiveMaterials restocks raw materials. No cash moves.
func (f *Factory) ReceiveMaterials(material string, amount int) error {
	return f.materials.Add(material, amount)
}

// Production describes a completed manufacturing run
type Production struct {
	Factory       string
	Product       string
	Amount        int
	Consumed      []Requirement
	UnitCost      shared.Money
	Cost          shared.Money
	BalanceBefore shared.Money
	BalanceAfter  shared.Money
}

// Manufacture produces amount units of the named design.
//
// Checks run in order and the first failure is returned with nothing changed:
// amount > 0, design known, the run's unit counts fit in an int, every material sufficient,
// balance covers design cost × amount.
// Materials carry no cash cost here; only the design's flat cost is charged.
func (f *Factory) Manufacture(designName string, amount int) (*Production, error) {
	if amount <= 0 {
		return nil, shared.NewInvalidInputError("amount",
			fmt.Sprintf("production amount must be greater than zero, got %d", amount))
	}

	design, err := f.Design(designName)
	if err != nil {
		return nil, err
	}

	required, err := design.Requirements(amount)
	if err != nil {
		return nil, err
	}
	if err := f.products.CanAdd(design.Name(), amount); err != nil {
		return nil, err
	}
	for _, req := range required {
		if available := f.materials.Units(req.Material); available < req.Units {
			return nil, shared.NewMaterialShortageError(f.name, req.Material, req.Units, available)
		}
	}

	cost := design.Cost().Times(amount)
	if err := f.CanAfford(cost); err != nil {
		return nil, err
	}

	// All checks passed; from here nothing can fail.
	before := f.Balance()
	for _, req := range required {
		_ = f.materials.Remove(req.Material, req.Units)
	}
	_ = f.Debit(cost)
	_ = f.products.Add(design.Name(), amount)

	return &Production{
		Factory:       f.name,
		Product:       design.Name(),
		Amount:        amount,
		Consumed:      required,
		UnitCost:      design.Cost(),
		Cost:          cost,
		BalanceBefore: before,
		BalanceAfter:  f.Balance(),
	}, nil
}

// StockProducts adds finished goods made outside a production run.
// Only products with a design can be stocked, since nothing else can be sold.
func (f *Factory) StockProducts(product string, amount int) error {
	if !f.Offers(product) {
		return shared.NewProductUnavailableError(f.name, product)
	}
	return f.products.Add(product, amount)
}

// DiscardProducts destroys finished goods
func (f *Factory) DiscardProducts(product string, amount int) error {
	return f.products.Discard(product, amount)
}

// DiscardMaterials destroys raw materials
func (f *Factory) DiscardMaterials(material string, amount int) error {
	return f.materials.Discard(material, amount)
}

func (f *Factory) String() string {
	return f.name + " (Balance: " + f.Balance().String() + ")"
}
