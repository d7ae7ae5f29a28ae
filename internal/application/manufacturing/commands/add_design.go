package commands

import (
	"context"
	"fmt"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// AddDesignCommand gives a factory a new product design
type AddDesignCommand struct {
	Factory     string
	Product     string
	Cost        shared.Money
	Ingredients []manufacturing.Ingredient
}

type AddDesignResponse struct {
	Factory world.FactoryView
}

type AddDesignHandler struct {
	world *world.World
}

func NewAddDesignHandler(w *world.World) *AddDesignHandler {
	return &AddDesignHandler{world: w}
}

func (h *AddDesignHandler) Handle(ctx context.Context, request common.Request) (common.Response, error) {
	cmd, ok := request.(*AddDesignCommand)
	if !ok {
		return nil, fmt.Errorf("invalid request type: expected *AddDesignCommand")
	}

	design, err := manufacturing.NewProductDesign(cmd.Product, cmd.Cost, cmd.Ingredients)
	if err != nil {
		return nil, fmt.Errorf("invalid design: %w", err)
	}
	if err := h.world.AddDesign(cmd.Factory, design); err != nil {
		return nil, fmt.Errorf("failed to add design to %s: %w", cmd.Factory, err)
	}

	view, err := h.world.Factory(cmd.Factory)
	if err != nil {
		return nil, err
	}

	common.LoggerFromContext(ctx).Log("INFO", "Design added", map[string]interface{}{
		"factory": cmd.Factory,
		"product": design.Name(),
		"cost":    design.Cost().String(),
	})
	return &AddDesignResponse{Factory: view}, nil
}
