package manufacturing

import (
	"fmt"
	"math"
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Ingredient is one line of a product design's recipe
type Ingredient struct {
	Material string
	PerUnit  int
}

// ProductDesign describes how a factory turns materials into one unit of a product.
// Immutable after creation.
type ProductDesign struct {
	name        string
	cost        shared.Money
	ingredients []Ingredient
}

// NewProductDesign validates and creates a design.
// cost is the flat production cost charged per unit produced.
func NewProductDesign(name string, cost shared.Money, ingredients []Ingredient) (*ProductDesign, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewInvalidInputError("name", "product name cannot be empty")
	}
	if cost.IsNegative() {
		return nil, shared.NewInvalidInputError("cost", "cost cannot be negative")
	}

	lines := make([]Ingredient, len(ingredients))
	for i, ing := range ingredients {
		if strings.TrimSpace(ing.Material) == "" {
			return nil, shared.NewInvalidInputError("material", "material name cannot be empty")
		}
		if ing.PerUnit <= 0 {
			return nil, shared.NewInvalidInputError("amount",
				fmt.Sprintf("amount of %s must be greater than zero, got %d", ing.Material, ing.PerUnit))
		}
		lines[i] = ing
	}

	return &ProductDesign{name: name, cost: cost, ingredients: lines}, nil
}

func (d *ProductDesign) Name() string {
	return d.name
}

func (d *ProductDesign) Cost() shared.Money {
	return d.cost
}

// Ingredients returns a copy of the recipe in declaration order
func (d *ProductDesign) Ingredients() []Ingredient {
	lines := make([]Ingredient, len(d.ingredients))
	copy(lines, d.ingredients)
	return lines
}

// Requirement is the total amount of one material needed for a production run
type Requirement struct {
	Material string
	Units    int
}

// Requirements scales the recipe to amount units, summing repeated materials.
// amount must be positive. A run whose material total does not fit in an int is rejected.
func (d *ProductDesign) Requirements(amount int) ([]Requirement, error) {
	index := make(map[string]int, len(d.ingredients))
	var required []Requirement
	for _, ing := range d.ingredients {
		if ing.PerUnit > math.MaxInt/amount {
			return nil, runTooLarge(d.name, ing.Material, amount)
		}
		units := ing.PerUnit * amount

		i, seen := index[ing.Material]
		if !seen {
			index[ing.Material] = len(required)
			required = append(required, Requirement{Material: ing.Material, Units: units})
			continue
		}
		if units > math.MaxInt-required[i].Units {
			return nil, runTooLarge(d.name, ing.Material, amount)
		}
		required[i].Units += units
	}
	return required, nil
}

func runTooLarge(product, material string, amount int) error {
	return shared.NewInvalidInputError("amount",
		fmt.Sprintf("%d units of %s would need more %s than can be counted", amount, product, material))
}

func (d *ProductDesign) String() string {
	return d.name
}
