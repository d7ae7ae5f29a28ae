package trading

import "github.com/andrescamacho/supplychain-go/internal/domain/shared"

// Party is anything that holds cash and goods and can take part in a trade.
// Factories, markets and customers all satisfy it.
type Party interface {
	Name() string
	Balance() shared.Money
	CanAfford(amount shared.Money) error
	Debit(amount shared.Money) error
	Credit(amount shared.Money)
	Inventory() *shared.Stock
}

// Seller is a party that can be asked whether it deals in a good at all.
// A factory offers what it has a design for; a market offers what it has stocked.
type Seller interface {
	Party
	Offers(good string) bool
}

// Buyer receives goods and pays for them
type Buyer interface {
	Party
}

// PriceList is implemented by sellers that publish ask prices (markets).
// A zero price means the good is not for sale.
type PriceList interface {
	Price(good string) shared.Money
}
