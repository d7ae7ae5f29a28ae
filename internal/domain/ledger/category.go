package ledger

import "fmt"

// Category groups transaction types for statements
type Category string

const (
	// CategoryWholesale covers factory → market trades
	CategoryWholesale Category = "WHOLESALE"

	// CategoryRetail covers market → customer trades
	CategoryRetail Category = "RETAIL"

	// CategoryProduction covers manufacturing costs
	CategoryProduction Category = "PRODUCTION"

	// CategoryInventoryAdjustment covers stock changes that move no cash
	CategoryInventoryAdjustment Category = "INVENTORY_ADJUSTMENT"
)

func AllCategories() []Category {
	return []Category{
		CategoryWholesale,
		CategoryRetail,
		CategoryProduction,
		CategoryInventoryAdjustment,
	}
}

// TypeToCategoryMap maps transaction types to their categories
var TypeToCategoryMap = map[TransactionType]Category{
	TransactionTypeMarketPurchase:   CategoryWholesale,
	TransactionTypeCustomerPurchase: CategoryRetail,
	TransactionTypeManufacture:      CategoryProduction,
	TransactionTypeRestock:          CategoryInventoryAdjustment,
	TransactionTypeDiscard:          CategoryInventoryAdjustment,
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryWholesale, CategoryRetail, CategoryProduction, CategoryInventoryAdjustment:
		return true
	default:
		return false
	}
}

// MovesCash is false for pure inventory adjustments
func (c Category) MovesCash() bool {
	return c != CategoryInventoryAdjustment
}

// ParseCategory parses a string into a Category
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
