package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

func TestParseIngredients(t *testing.T) {
	ingredients, err := parseIngredients([]string{"Plastic:2", "Gold:1", "Grade:A:3"})

	require.NoError(t, err)
	assert.Equal(t, []manufacturing.Ingredient{
		{Material: "Plastic", PerUnit: 2},
		{Material: "Gold", PerUnit: 1},
		{Material: "Grade:A", PerUnit: 3},
	}, ingredients)

	for _, bad := range []string{"Wood", ":4", "Wood:", "Wood:four"} {
		_, err := parseIngredients([]string{bad})
		assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err), bad)
	}
}

func TestParseAmount(t *testing.T) {
	n, err := parseAmount("amount", "-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n, "sign checks belong to the domain")

	_, err = parseAmount("amount", "2.5")
	assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
}

func TestFormatError(t *testing.T) {
	domain := fmt.Errorf("John could not buy Chair: %w", shared.NewPriceNotSetError("Downtown Mall", "Chair"))

	assert.Regexp(t, `^Error \[PRICE_NOT_SET\]: John could not buy Chair: `, formatError(domain))
	assert.Equal(t, "Error: boom", formatError(errors.New("boom")))
}

func TestFormatStock(t *testing.T) {
	assert.Equal(t, "(empty)", formatStock(nil))
	assert.Equal(t, "Chair: 3, Table: 0", formatStock(map[string]int{"Table": 0, "Chair": 3}))
}

func TestFormatSigned(t *testing.T) {
	assert.Equal(t, "+10.00", formatSigned(shared.MoneyFromInt(10)))
	assert.Equal(t, "-10.00", formatSigned(shared.MoneyFromInt(-10)))
	assert.Equal(t, "0.00", formatSigned(shared.Zero()))
}
