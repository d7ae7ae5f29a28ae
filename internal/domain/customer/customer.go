package customer

import (
	"strings"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Customer buys goods from markets and keeps them in a personal inventory
type Customer struct {
	name string
	shared.Account
	inventory *shared.Stock
}

func NewCustomer(name string, balance shared.Money) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewInvalidInputError("name", "customer name cannot be empty")
	}
	account, err := shared.NewAccount(name, balance)
	if err != nil {
		return nil, err
	}
	return &Customer{
		name:      name,
		Account:   account,
		inventory: shared.NewStock(name),
	}, nil
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Inventory() *shared.Stock {
	return c.inventory
}

// Discard destroys owned goods
func (c *Customer) Discard(good string, amount int) error {
	return c.inventory.Discard(good, amount)
}

func (c *Customer) String() string {
	return c.name + " (Balance: " + c.Balance().String() + ")"
}
