package persistence

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionModel represents the transactions table (the journal)
type TransactionModel struct {
	ID              string          `gorm:"column:id;primaryKey;size:36"`
	Timestamp       time.Time       `gorm:"column:timestamp;not null;index"`
	TransactionType string          `gorm:"column:transaction_type;size:32;not null;index"`
	Category        string          `gorm:"column:category;size:32;not null;index"`
	Party           string          `gorm:"column:party;not null;index"`
	Counterparty    string          `gorm:"column:counterparty;index"`
	Good            string          `gorm:"column:good;not null"`
	Quantity        int             `gorm:"column:quantity;not null"`
	UnitPrice       decimal.Decimal `gorm:"column:unit_price;type:decimal(20,4);not null"`
	Total           decimal.Decimal `gorm:"column:total;type:decimal(20,4);not null"`
	BalanceBefore   decimal.Decimal `gorm:"column:balance_before;type:decimal(20,4);not null"`
	BalanceAfter    decimal.Decimal `gorm:"column:balance_after;type:decimal(20,4);not null"`
	Description     string          `gorm:"column:description"`
	Metadata        string          `gorm:"column:metadata;type:text"` // JSON stored as string
}

func (TransactionModel) TableName() string {
	return "transactions"
}
