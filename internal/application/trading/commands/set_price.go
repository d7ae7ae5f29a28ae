package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// SetPriceCommand overwrites a market's ask price for a good
type SetPriceCommand struct {
	Market string
	Good   string
	Price  shared.Money
}

type SetPriceResponse struct {
	Market world.MarketView
}

type SetPriceHandler struct {
	world *world.World
}

func NewSetPriceHandler(w *world.World) *SetPriceHandler {
	return &SetPriceHandler{world: w}
}

func (h *SetPriceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*SetPriceCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *SetPriceCommand")
	}

	if err := h.world.SetPrice(cmd.Market, cmd.Good, cmd.Price); err != nil {
		return nil, fmt.Errorf("failed to set price at %s: %w", cmd.Market, err)
	}

	view, err := h.world.Market(cmd.Market)
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log("INFO", "Price set", map[string]interface{}{
		"market": cmd.Market,
		"good":   cmd.Good,
		"price":  cmd.Price.String(),
	})
	return &SetPriceResponse{Market: view}, nil
}
