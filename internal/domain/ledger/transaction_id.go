package ledger

import (
	"fmt"

	"github.com/google/uuid"
)

// TransactionID identifies one journal entry
type TransactionID struct {
	value uuid.UUID
}

// NewTransactionID generates a random (v4) identifier
func NewTransactionID() TransactionID {
	return TransactionID{value: uuid.New()}
}

// ParseTransactionID reads an identifier back from storage or user input
func ParseTransactionID(id string) (TransactionID, error) {
	if id == "" {
		return TransactionID{}, fmt.Errorf("transaction_id cannot be empty")
	}
	parsed, err := uuid.Parse(id)
	if err != nil {
		return TransactionID{}, fmt.Errorf("invalid transaction_id format: %w", err)
	}
	return TransactionID{value: parsed}, nil
}

func (t TransactionID) String() string {
	return t.value.String()
}

// Short is the first block of the UUID, enough to tell entries apart in a listing
func (t TransactionID) Short() string {
	return t.String()[:8]
}

func (t TransactionID) Equals(other TransactionID) bool {
	return t.value == other.value
}

func (t TransactionID) IsZero() bool {
	return t.value == uuid.Nil
}
