package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

type ListProducersQuery struct{}

type ListProducersResponse struct {
	Producers []world.ProducerView
}

type ListFactoriesQuery struct{}

type ListFactoriesResponse struct {
	Factories []world.FactoryView
}

type ListMarketsQuery struct{}

type ListMarketsResponse struct {
	Markets []world.MarketView
}

type ListCustomersQuery struct{}

type ListCustomersResponse struct {
	Customers []world.CustomerView
}

// ListEntitiesHandler answers the four list queries, each in insertion order
type ListEntitiesHandler struct {
	world *world.World
}

func NewListEntitiesHandler(w *world.World) *ListEntitiesHandler {
	return &ListEntitiesHandler{world: w}
}

func (h *ListEntitiesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	switch request.(type) {
	case *ListProducersQuery:
		return &ListProducersResponse{Producers: h.world.Producers()}, nil
	case *ListFactoriesQuery:
		return &ListFactoriesResponse{Factories: h.world.Factories()}, nil
	case *ListMarketsQuery:
		return &ListMarketsResponse{Markets: h.world.Markets()}, nil
	case *ListCustomersQuery:
		return &ListCustomersResponse{Customers: h.world.Customers()}, nil
	default:
		return nil, fmt.Errorf("invalid request type: %T", request)
	}
}
