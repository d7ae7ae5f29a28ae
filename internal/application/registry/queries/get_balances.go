package queries

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// GetBalancesQuery returns the cash position of every party
type GetBalancesQuery struct{}

type PartyBalance struct {
	Name    string
	Role    string // factory, market or customer
	Balance shared.Money
}

type GetBalancesResponse struct {
	Balances []PartyBalance
	Total    shared.Money
}

type GetBalancesHandler struct {
	world *world.World
}

func NewGetBalancesHandler(w *world.World) *GetBalancesHandler {
	return &GetBalancesHandler{world: w}
}

func (h *GetBalancesHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	if _, ok := request.(*GetBalancesQuery); !ok {
		return nil, fmt.Errorf("invalid request type: expected *GetBalancesQuery")
	}

	response := &GetBalancesResponse{}
	add := func(name, role string, balance shared.Money) {
		response.Balances = append(response.Balances, PartyBalance{Name: name, Role: role, Balance: balance})
		response.Total = response.Total.Add(balance)
	}
	for _, f := range h.world.Factories() {
		add(f.Name, "factory", f.Balance)
	}
	for _, m := range h.world.Markets() {
		add(m.Name, "market", m.Balance)
	}
	for _, c := range h.world.Customers() {
		add(c.Name, "customer", c.Balance)
	}
	return response, nil
}
