package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// AddProducerCommand registers a raw-material producer
type AddProducerCommand struct {
	Name     string
	Material string
	Cost     shared.Money
}

type AddProducerResponse struct {
	Producer world.ProducerView
}

type AddProducerHandler struct {
	world *world.World
}

func NewAddProducerHandler(w *world.World) *AddProducerHandler {
	return &AddProducerHandler{world: w}
}

func (h *AddProducerHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddProducerCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddProducerCommand")
	}

	view, err := h.world.AddProducer(cmd.Name, cmd.Material, cmd.Cost)
	if err != nil {
		return nil, fmt.Errorf("failed to add producer: %w", err)
	}

	common.LoggerFromContext(ctx).Log("INFO", "Producer added", map[string]interface{}{
		"producer": view.Name,
		"material": view.Material,
		"cost":     view.Cost.String(),
	})
	return &AddProducerResponse{Producer: view}, nil
}
