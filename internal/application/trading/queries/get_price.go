package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// GetPriceQuery reads a market's ask price for a good
type GetPriceQuery struct {
	Market string
	Good   string
}

type GetPriceResponse struct {
	Price shared.Money
	// ForSale is false when the price is unset (zero)
	ForSale bool
}

type GetPriceHandler struct {
	world *world.World
}

func NewGetPriceHandler(w *world.World) *GetPriceHandler {
	return &GetPriceHandler{world: w}
}

func (h *GetPriceHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	query, ok := request.(*GetPriceQuery)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetPriceQuery")
	}

	price, err := h.world.Price(query.Market, query.Good)
	if err != nil {
		return nil, err
	}
	return &GetPriceResponse{Price: price, ForSale: price.IsPositive()}, nil
}
