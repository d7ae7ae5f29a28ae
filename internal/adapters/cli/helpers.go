package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

// parseAmount reads a unit count. Zero and negative values are left for the domain to reject.
func parseAmount(field, arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, shared.NewInvalidInputError(field, fmt.Sprintf("%q is not a whole number", arg))
	}
	return n, nil
}

func parseMoney(field, arg string) (shared.Money, error) {
	return shared.ParseMoney(field, arg)
}

// parseIngredients reads "Material:perUnit" pairs, e.g. Wood:4 Gold:1
func parseIngredients(args []string) ([]manufacturing.Ingredient, error) {
	ingredients := make([]manufacturing.Ingredient, 0, len(args))
	for _, arg := range args {
		i := strings.LastIndex(arg, ":")
		if i <= 0 || i == len(arg)-1 {
			return nil, shared.NewInvalidInputError("ingredient",
				fmt.Sprintf("%q must look like Material:amount", arg))
		}
		perUnit, err := parseAmount("ingredient", arg[i+1:])
		if err != nil {
			return nil, err
		}
		ingredients = append(ingredients, manufacturing.Ingredient{Material: arg[:i], PerUnit: perUnit})
	}
	return ingredients, nil
}

// formatError renders a failure for the terminal, tagging domain errors with their kind
func formatError(err error) string {
	if kind := shared.KindOf(err); kind != "" {
		return fmt.Sprintf("Error [%s]: %s", kind, err.Error())
	}
	return "Error: " + err.Error()
}

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

// formatStock renders a stock map as "Chair: 3, Table: 1" in name order
func formatStock(stock map[string]int) string {
	if len(stock) == 0 {
		return "(empty)"
	}
	parts := make([]string, 0, len(stock))
	for _, good := range sortedGoods(stock) {
		parts = append(parts, fmt.Sprintf("%s: %d", good, stock[good]))
	}
	return strings.Join(parts, ", ")
}

func sortedGoods[V any](m map[string]V) []string {
	goods := make([]string, 0, len(m))
	for good := range m {
		goods = append(goods, good)
	}
	sort.Strings(goods)
	return goods
}

// formatSigned prefixes positive amounts with +
func formatSigned(m shared.Money) string {
	if m.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}
