package ledger

import (
	"fmt"
	"strings"
	"time"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// Transaction is one journal entry. Immutable once created.
//
// Party is the side whose cash and stock the entry is about: the buyer of a trade,
// the factory of a production run, the holder of a restock or discard.
// Counterparty is the seller of a trade and empty otherwise.
type Transaction struct {
	id              TransactionID
	timestamp       time.Time
	transactionType TransactionType
	category        Category
	party           string
	counterparty    string
	good            string
	quantity        int
	unitPrice       shared.Money
	total           shared.Money
	balanceBefore   shared.Money // party's balance
	balanceAfter    shared.Money
	description     string
	metadata        map[string]interface{}
}

// TransactionParams carries the fields of a new transaction
type TransactionParams struct {
	Timestamp     time.Time
	Type          TransactionType
	Party         string
	Counterparty  string
	Good          string
	Quantity      int
	UnitPrice     shared.Money
	Total         shared.Money
	BalanceBefore shared.Money
	BalanceAfter  shared.Money
	Description   string
	Metadata      map[string]interface{}
}

// NewTransaction creates a new transaction with validation
func NewTransaction(p TransactionParams) (*Transaction, error) {
	if strings.TrimSpace(p.Party) == "" {
		return nil, &ErrInvalidTransaction{Field: "party", Reason: "party cannot be empty"}
	}

	category, err := p.Type.ToCategory()
	if err != nil {
		return nil, &ErrInvalidTransaction{Field: "transaction_type", Reason: err.Error()}
	}

	t := &Transaction{
		id:              NewTransactionID(),
		timestamp:       p.Timestamp,
		transactionType: p.Type,
		category:        category,
		party:           p.Party,
		counterparty:    p.Counterparty,
		good:            p.Good,
		quantity:        p.Quantity,
		unitPrice:       p.UnitPrice,
		total:           p.Total,
		balanceBefore:   p.BalanceBefore,
		balanceAfter:    p.BalanceAfter,
		description:     p.Description,
		metadata:        p.Metadata,
	}

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReconstructTransaction rebuilds a transaction from persistence without validation
func ReconstructTransaction(id TransactionID, category Category, p TransactionParams) *Transaction {
	return &Transaction{
		id:              id,
		timestamp:       p.Timestamp,
		transactionType: p.Type,
		category:        category,
		party:           p.Party,
		counterparty:    p.Counterparty,
		good:            p.Good,
		quantity:        p.Quantity,
		unitPrice:       p.UnitPrice,
		total:           p.Total,
		balanceBefore:   p.BalanceBefore,
		balanceAfter:    p.BalanceAfter,
		description:     p.Description,
		metadata:        p.Metadata,
	}
}

// Validate checks that the transaction satisfies all invariants
func (t *Transaction) Validate() error {
	if t.quantity <= 0 {
		return &ErrInvalidTransaction{
			Field:  "quantity",
			Reason: fmt.Sprintf("quantity must be greater than zero, got %d", t.quantity),
		}
	}
	if strings.TrimSpace(t.good) == "" {
		return &ErrInvalidTransaction{Field: "good", Reason: "good cannot be empty"}
	}

	if !t.category.MovesCash() {
		if !t.total.IsZero() || !t.balanceBefore.Equal(t.balanceAfter) {
			return &ErrInvalidTransaction{
				Field:  "total",
				Reason: fmt.Sprintf("%s entries move no cash", t.transactionType),
			}
		}
		return nil
	}

	if expected := t.unitPrice.Times(t.quantity); !t.total.Equal(expected) {
		return &ErrInvalidTransaction{
			Field:  "total",
			Reason: fmt.Sprintf("total %s does not equal %s x %d", t.total, t.unitPrice, t.quantity),
		}
	}

	// balance_after must equal balance_before - total
	expected := t.balanceBefore.Sub(t.total)
	if !t.balanceAfter.Equal(expected) {
		return &ErrBalanceInvariantViolation{
			BalanceBefore: t.balanceBefore,
			Total:         t.total,
			BalanceAfter:  t.balanceAfter,
			Expected:      expected,
		}
	}
	return nil
}

// Getters (all fields are immutable)

func (t *Transaction) ID() TransactionID {
	return t.id
}

func (t *Transaction) Timestamp() time.Time {
	return t.timestamp
}

func (t *Transaction) TransactionType() TransactionType {
	return t.transactionType
}

func (t *Transaction) Category() Category {
	return t.category
}

func (t *Transaction) Party() string {
	return t.party
}

func (t *Transaction) Counterparty() string {
	return t.counterparty
}

func (t *Transaction) Good() string {
	return t.good
}

func (t *Transaction) Quantity() int {
	return t.quantity
}

func (t *Transaction) UnitPrice() shared.Money {
	return t.unitPrice
}

func (t *Transaction) Total() shared.Money {
	return t.total
}

func (t *Transaction) BalanceBefore() shared.Money {
	return t.balanceBefore
}

func (t *Transaction) BalanceAfter() shared.Money {
	return t.balanceAfter
}

func (t *Transaction) Description() string {
	return t.description
}

func (t *Transaction) Metadata() map[string]interface{} {
	// Return a copy to prevent external modification
	if t.metadata == nil {
		return nil
	}
	copy := make(map[string]interface{}, len(t.metadata))
	for k, v := range t.metadata {
		copy[k] = v
	}
	return copy
}

// Involves reports whether name is either side of the transaction
func (t *Transaction) Involves(name string) bool {
	return t.party == name || t.counterparty == name
}

// CashFlowFor is the signed cash effect on name: negative for the payer,
// positive for the receiving counterparty, zero otherwise
func (t *Transaction) CashFlowFor(name string) shared.Money {
	switch name {
	case t.party:
		return t.total.Neg()
	case t.counterparty:
		return t.total
	default:
		return shared.Zero()
	}
}

func (t *Transaction) String() string {
	return fmt.Sprintf("Transaction[%s, type=%s, %s x%d, total=%s, balance=%s->%s]",
		t.id.Short(), t.transactionType, t.good, t.quantity, t.total, t.balanceBefore, t.balanceAfter)
}
