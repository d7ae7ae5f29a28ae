package trading

import (
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Order is a request to move Amount units of Good from a seller to a buyer.
// UnitPrice is only used when the seller publishes no price list.
type Order struct {
	Good      string
	Amount    int
	UnitPrice shared.Money
}

// Receipt records a completed trade
type Receipt struct {
	Seller    string
	Buyer     string
	Good      string
	Amount    int
	UnitPrice shared.Money
	Total     shared.Money

	SellerBalanceBefore shared.Money
	SellerBalanceAfter  shared.Money
	BuyerBalanceBefore  shared.Money
	BuyerBalanceAfter   shared.Money
}

// Execute moves goods from seller to buyer and cash from buyer to seller.
//
// Preconditions are checked in order and the first failure is returned before anything mutates:
//  1. amount > 0 (InvalidInput)
//  2. price: a seller with a price list sells at its ask, which must be > 0 (PriceNotSet);
//     any other seller sells at order.UnitPrice, which must be > 0 (InvalidPrice)
//  3. the seller offers the good (ProductUnavailable)
//  4. the seller holds at least amount units (InsufficientStock)
//  5. the buyer can pay amount × price (InsufficientFunds)
//  6. the buyer's count of the good stays within an int (InvalidInput)
func Execute(seller Seller, buyer Buyer, order Order) (*Receipt, error) {
	if order.Amount <= 0 {
		return nil, invalidAmount(order.Amount)
	}
	if Party(seller) == Party(buyer) {
		return nil, selfTrade(seller.Name())
	}

	price, err := resolvePrice(seller, order)
	if err != nil {
		return nil, err
	}

	if !seller.Offers(order.Good) {
		return nil, shared.NewProductUnavailableError(seller.Name(), order.Good)
	}
	if err := seller.Inventory().CanRemove(order.Good, order.Amount); err != nil {
		return nil, err
	}

	total := price.Times(order.Amount)
	if err := buyer.CanAfford(total); err != nil {
		return nil, err
	}
	if err := buyer.Inventory().CanAdd(order.Good, order.Amount); err != nil {
		return nil, err
	}

	receipt := &Receipt{
		Seller:              seller.Name(),
		Buyer:               buyer.Name(),
		Good:                order.Good,
		Amount:              order.Amount,
		UnitPrice:           price,
		Total:               total,
		SellerBalanceBefore: seller.Balance(),
		BuyerBalanceBefore:  buyer.Balance(),
	}

	// Every check passed; the four mutations below cannot fail.
	_ = seller.Inventory().Remove(order.Good, order.Amount)
	_ = buyer.Debit(total)
	seller.Credit(total)
	_ = buyer.Inventory().Add(order.Good, order.Amount)

	receipt.SellerBalanceAfter = seller.Balance()
	receipt.BuyerBalanceAfter = buyer.Balance()
	return receipt, nil
}

func resolvePrice(seller Seller, order Order) (shared.Money, error) {
	if list, ok := seller.(PriceList); ok {
		ask := list.Price(order.Good)
		if !ask.IsPositive() {
			return shared.Money{}, shared.NewPriceNotSetError(seller.Name(), order.Good)
		}
		return ask, nil
	}
	if !order.UnitPrice.IsPositive() {
		return shared.Money{}, shared.NewInvalidPriceError(order.Good, order.UnitPrice)
	}
	return order.UnitPrice, nil
}
