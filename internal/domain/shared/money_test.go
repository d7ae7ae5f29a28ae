package shared

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	m, err := ParseMoney("price", " 12.50 ")
	require.NoError(t, err)
	assert.Equal(t, "12.50", m.String())

	_, err = ParseMoney("price", "twelve")
	require.Error(t, err)
	assert.Equal(t, KindInvalidInput, KindOf(err))
}

func TestMoney_ArithmeticIsExact(t *testing.T) {
	price := MoneyFromFloat(0.1)
	total := price.Times(3)

	assert.True(t, total.Equal(MoneyFromFloat(0.3)))
	assert.Equal(t, "0.30", total.String())
}

func TestMoney_Comparisons(t *testing.T) {
	ten := MoneyFromInt(10)
	five := MoneyFromInt(5)

	assert.True(t, five.LessThan(ten))
	assert.False(t, ten.LessThan(five))
	assert.True(t, ten.Sub(five).Equal(five))
	assert.True(t, five.Sub(ten).IsNegative())
	assert.True(t, Zero().IsZero())
	assert.False(t, Zero().IsPositive())
	assert.True(t, five.Neg().Add(five).IsZero())
}

func TestMoney_ZeroValueIsZero(t *testing.T) {
	var m Money
	assert.True(t, m.IsZero())
	assert.Equal(t, "0.00", m.String())
	assert.True(t, m.Add(MoneyFromInt(3)).Equal(MoneyFromInt(3)))
}
