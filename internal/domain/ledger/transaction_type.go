package ledger

import "fmt"

// TransactionType represents the kind of operation a journal entry records
type TransactionType string

const (
	// TransactionTypeMarketPurchase is a market buying finished goods from a factory
	TransactionTypeMarketPurchase TransactionType = "MARKET_PURCHASE"

	// TransactionTypeCustomerPurchase is a customer buying goods from a market
	TransactionTypeCustomerPurchase TransactionType = "CUSTOMER_PURCHASE"

	// TransactionTypeManufacture is a factory paying for a production run
	TransactionTypeManufacture TransactionType = "MANUFACTURE"

	// TransactionTypeRestock is goods or materials arriving without payment
	TransactionTypeRestock TransactionType = "RESTOCK"

	// TransactionTypeDiscard is goods or materials being destroyed
	TransactionTypeDiscard TransactionType = "DISCARD"
)

// AllTransactionTypes returns all valid transaction types
func AllTransactionTypes() []TransactionType {
	return []TransactionType{
		TransactionTypeMarketPurchase,
		TransactionTypeCustomerPurchase,
		TransactionTypeManufacture,
		TransactionTypeRestock,
		TransactionTypeDiscard,
	}
}

func (t TransactionType) String() string {
	return string(t)
}

// IsValid checks if the transaction type is valid
func (t TransactionType) IsValid() bool {
	_, ok := TypeToCategoryMap[t]
	return ok
}

// ToCategory maps the transaction type to its category
func (t TransactionType) ToCategory() (Category, error) {
	category, exists := TypeToCategoryMap[t]
	if !exists {
		return "", fmt.Errorf("unknown transaction type: %s", t)
	}
	return category, nil
}

// ParseTransactionType parses a string into a TransactionType
func ParseTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}
