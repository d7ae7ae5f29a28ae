package trading

import (
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

func invalidAmount(amount int) error {
	return shared.NewInvalidInputError("amount",
		fmt.Sprintf("trade amount must be greater than zero, got %d", amount))
}

func selfTrade(name string) error {
	return shared.NewInvalidInputError("buyer", fmt.Sprintf("%s cannot trade with itself", name))
}
