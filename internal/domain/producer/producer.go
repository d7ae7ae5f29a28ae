package producer

import (
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Producer sells one raw material at a fixed cost per unit.
// The cost is informational: no operation charges it (factories receive
// materials without paying, see manufacturing.Factory.ReceiveMaterials).
type Producer struct {
	name     string
	material string
	cost     shared.Money
}

// NewProducer creates a producer; the cost must be greater than zero
func NewProducer(name, material string, cost shared.Money) (*Producer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewInvalidInputError("name", "producer name cannot be empty")
	}
	if !cost.IsPositive() {
		return nil, shared.NewInvalidInputError("cost", "cost must be greater than zero")
	}
	return &Producer{name: name, material: material, cost: cost}, nil
}

func (p *Producer) Name() string {
	return p.name
}

// Material is the raw material this producer sells (may be empty)
func (p *Producer) Material() string {
	return p.material
}

func (p *Producer) Cost() shared.Money {
	return p.cost
}

// UpdateCost replaces the cost per unit
func (p *Producer) UpdateCost(cost shared.Money) error {
	if !cost.IsPositive() {
		return shared.NewInvalidInputError("cost", "cost must be greater than zero")
	}
	p.cost = cost
	return nil
}

func (p *Producer) String() string {
	return p.name + " (Cost: " + p.cost.String() + ")"
}
