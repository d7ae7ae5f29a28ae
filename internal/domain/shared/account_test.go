package shared

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount_RejectsNegativeBalance(t *testing.T) {
	_, err := NewAccount("John", MoneyFromInt(-1))
	assert.Equal(t, KindInvalidInput, KindOf(err))

	acct, err := NewAccount("John", Zero())
	require.NoError(t, err)
	assert.True(t, acct.Balance().IsZero())
}

func TestAccount_DebitFailureLeavesBalance(t *testing.T) {
	acct, err := NewAccount("John", MoneyFromInt(100))
	require.NoError(t, err)

	err = acct.Debit(MoneyFromInt(150))

	var fundsErr *InsufficientFundsError
	require.True(t, errors.As(err, &fundsErr))
	assert.Equal(t, "John", fundsErr.Party)
	assert.True(t, fundsErr.Required.Equal(MoneyFromInt(150)))
	assert.True(t, fundsErr.Available.Equal(MoneyFromInt(100)))
	assert.True(t, acct.Balance().Equal(MoneyFromInt(100)))
}

func TestAccount_DebitExactBalance(t *testing.T) {
	acct, err := NewAccount("John", MoneyFromInt(100))
	require.NoError(t, err)

	require.NoError(t, acct.Debit(MoneyFromInt(100)))
	assert.True(t, acct.Balance().IsZero())

	acct.Credit(MoneyFromInt(40))
	assert.True(t, acct.Balance().Equal(MoneyFromInt(40)))
}

func TestKindOf_SurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("trade failed: %w", NewPriceNotSetError("Downtown Mall", "Chair"))

	assert.Equal(t, KindPriceNotSet, KindOf(err))
	assert.True(t, IsKind(err, KindPriceNotSet))
	assert.Equal(t, ErrorKind(""), KindOf(errors.New("boom")))
	assert.False(t, IsKind(nil, KindPriceNotSet))
}

func TestMaterialShortageError_Shortfall(t *testing.T) {
	err := NewMaterialShortageError("Furniture Factory", "Wood", 8, 5)

	assert.Equal(t, 3, err.Shortfall())
	assert.Contains(t, err.Error(), "Wood")
	assert.Equal(t, KindMaterialShortage, KindOf(err))
}
