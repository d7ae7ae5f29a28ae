package ledger

import (
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// ErrInvalidTransaction represents validation errors for transactions
type ErrInvalidTransaction struct {
	Field  string
	Reason string
}

func (e *ErrInvalidTransaction) Error() string {
	return fmt.Sprintf("invalid transaction: %s - %s", e.Field, e.Reason)
}

// ErrBalanceInvariantViolation is returned when balance_after != balance_before - total
type ErrBalanceInvariantViolation struct {
	BalanceBefore shared.Money
	Total         shared.Money
	BalanceAfter  shared.Money
	Expected      shared.Money
}

func (e *ErrBalanceInvariantViolation) Error() string {
	return fmt.Sprintf("balance invariant violated: balance_before=%s - total=%s should equal %s, but got %s",
		e.BalanceBefore, e.Total, e.Expected, e.BalanceAfter)
}

// ErrTransactionNotFound represents errors when a transaction cannot be found
type ErrTransactionNotFound struct {
	ID string
}

func (e *ErrTransactionNotFound) Error() string {
	return fmt.Sprintf("transaction not found: id=%s", e.ID)
}
