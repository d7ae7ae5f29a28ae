package manufacturing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

func TestNewProductDesign_Validation(t *testing.T) {
	tests := []struct {
		name        string
		product     string
		cost        shared.Money
		ingredients []Ingredient
	}{
		{name: "blank product", product: "", cost: shared.MoneyFromInt(1)},
		{name: "negative cost", product: "Chair", cost: shared.MoneyFromInt(-1)},
		{name: "blank material", product: "Chair", cost: shared.MoneyFromInt(1),
			ingredients: []Ingredient{{Material: "", PerUnit: 1}}},
		{name: "zero per unit", product: "Chair", cost: shared.MoneyFromInt(1),
			ingredients: []Ingredient{{Material: "Wood", PerUnit: 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProductDesign(tt.product, tt.cost, tt.ingredients)
			assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
		})
	}
}

func TestProductDesign_Requirements(t *testing.T) {
	design, err := NewProductDesign("Phone", shared.MoneyFromInt(200), []Ingredient{
		{Material: "Plastic", PerUnit: 2},
		{Material: "Gold", PerUnit: 1},
		{Material: "Plastic", PerUnit: 1},
	})
	require.NoError(t, err)

	required, err := design.Requirements(3)

	require.NoError(t, err)
	assert.Equal(t, []Requirement{
		{Material: "Plastic", Units: 9},
		{Material: "Gold", Units: 3},
	}, required)
}

func TestProductDesign_RequirementsRejectsUncountableRuns(t *testing.T) {
	design, err := NewProductDesign("Phone", shared.MoneyFromInt(200), []Ingredient{
		{Material: "Plastic", PerUnit: 2},
		{Material: "Plastic", PerUnit: 2},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		amount int
	}{
		{name: "one line overflows", amount: math.MaxInt/2 + 1},
		{name: "summed lines overflow", amount: math.MaxInt / 3},
		{name: "max int", amount: math.MaxInt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			required, err := design.Requirements(tt.amount)

			assert.Nil(t, required)
			assert.Equal(t, shared.KindInvalidInput, shared.KindOf(err))
		})
	}

	required, err := design.Requirements(math.MaxInt / 4)
	require.NoError(t, err)
	assert.Equal(t, math.MaxInt/4*4, required[0].Units)
}

func TestProductDesign_IngredientsIsACopy(t *testing.T) {
	design, err := NewProductDesign("Chair", shared.MoneyFromInt(50), []Ingredient{{Material: "Wood", PerUnit: 4}})
	require.NoError(t, err)

	lines := design.Ingredients()
	lines[0].PerUnit = 100

	assert.Equal(t, 4, design.Ingredients()[0].PerUnit)
}
