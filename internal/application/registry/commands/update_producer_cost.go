package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// UpdateProducerCostCommand replaces a producer's cost per unit
type UpdateProducerCostCommand struct {
	Name string
	Cost shared.Money
}

type UpdateProducerCostResponse struct {
	Producer world.ProducerView
}

type UpdateProducerCostHandler struct {
	world *world.World
}

func NewUpdateProducerCostHandler(w *world.World) *UpdateProducerCostHandler {
	return &UpdateProducerCostHandler{world: w}
}

func (h *UpdateProducerCostHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*UpdateProducerCostCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *UpdateProducerCostCommand")
	}

	view, err := h.world.UpdateProducerCost(cmd.Name, cmd.Cost)
	if err != nil {
		return nil, fmt.Errorf("failed to update cost of producer %s: %w", cmd.Name, err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "Producer cost updated", map[string]interface{}{
		"producer": view.Name,
		"cost":     view.Cost.String(),
	})
	return &UpdateProducerCostResponse{Producer: view}, nil
}
