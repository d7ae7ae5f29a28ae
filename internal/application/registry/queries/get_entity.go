package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

type GetProducerQuery struct {
	Name string
}

type GetFactoryQuery struct {
	Name string
}

type GetMarketQuery struct {
	Name string
}

type GetCustomerQuery struct {
	Name string
}

// GetEntityHandler looks up a single entity by exact name.
// Responses are the world views themselves (*world.FactoryView etc).
type GetEntityHandler struct {
	world *world.World
}

func NewGetEntityHandler(w *world.World) *GetEntityHandler {
	return &GetEntityHandler{world: w}
}

func (h *GetEntityHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch q := request.(type) {
	case *GetProducerQuery:
		view, err := h.world.Producer(q.Name)
		if err != nil {
			return nil, err
		}
		return &view, nil
	case *GetFactoryQuery:
		view, err := h.world.Factory(q.Name)
		if err != nil {
			return nil, err
		}
		return &view, nil
	case *GetMarketQuery:
		view, err := h.world.Market(q.Name)
		if err != nil {
			return nil, err
		}
		return &view, nil
	case *GetCustomerQuery:
		view, err := h.world.Customer(q.Name)
		if err != nil {
			return nil, err
		}
		return &view, nil
	default:
		return nil, fmt.Errorf("invalid request type: %T", request)
	}
}
