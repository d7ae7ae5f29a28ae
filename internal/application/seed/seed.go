package seed

import (
	"context"
	"fmt"
	"sort"

	"github.com/andrescamacho/supplychain-go/internal/application/common"
	inventoryCommands "github.com/andrescamacho/supplychain-go/internal/application/inventory/commands"
	manufacturingCommands "github.com/andrescamacho/supplychain-go/internal/application/manufacturing/commands"
	registryCommands "github.com/andrescamacho/supplychain-go/internal/application/registry/commands"
	tradingCommands "github.com/andrescamacho/supplychain-go/internal/application/trading/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/manufacturing"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// Apply builds the world described by data by sending ordinary commands, so seeded
// entities go through the same validation and journaling as interactive ones.
// It stops at the first failure.
func Apply(ctx context.Context, m common.Mediator, data *Data) error {
	for _, p := range data.Producers {
		if _, err := m.Send(ctx, &registryCommands.AddProducerCommand{
			Name: p.Name, Material: p.Material, Cost: shared.MoneyFromFloat(p.Cost),
		}); err != nil {
			return fmt.Errorf("seed producer %s: %w", p.Name, err)
		}
	}

	for _, f := range data.Factories {
		if err := applyFactory(ctx, m, f); err != nil {
			return fmt.Errorf("seed factory %s: %w", f.Name, err)
		}
	}

	for _, mk := range data.Markets {
		if err := applyMarket(ctx, m, mk); err != nil {
			return fmt.Errorf("seed market %s: %w", mk.Name, err)
		}
	}

	for _, c := range data.Customers {
		if _, err := m.Send(ctx, &registryCommands.AddCustomerCommand{
			Name: c.Name, Balance: shared.MoneyFromFloat(c.Balance),
		}); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Name, err)
		}
		if err := restock(ctx, m, world.HolderCustomer, c.Name, c.Inventory); err != nil {
			return fmt.Errorf("seed customer %s: %w", c.Name, err)
		}
	}

	common.LoggerFromContext(ctx).Log("INFO", "World seeded", map[string]interface{}{
		"producers": len(data.Producers),
		"factories": len(data.Factories),
		"markets":   len(data.Markets),
		"customers": len(data.Customers),
	})
	return nil
}

func applyFactory(ctx context.Context, m common.Mediator, f Factory) error {
	if _, err := m.Send(ctx, &registryCommands.AddFactoryCommand{
		Name: f.Name, Balance: shared.MoneyFromFloat(f.Balance),
	}); err != nil {
		return err
	}

	for _, d := range f.Designs {
		ingredients := make([]manufacturing.Ingredient, len(d.Ingredients))
		for i, ing := range d.Ingredients {
			ingredients[i] = manufacturing.Ingredient{Material: ing.Material, PerUnit: ing.PerUnit}
		}
		if _, err := m.Send(ctx, &manufacturingCommands.AddDesignCommand{
			Factory:     f.Name,
			Product:     d.Product,
			Cost:        shared.MoneyFromFloat(d.Cost),
			Ingredients: ingredients,
		}); err != nil {
			return err
		}
	}

	if err := restock(ctx, m, world.HolderFactoryMaterial, f.Name, f.Materials); err != nil {
		return err
	}
	return restock(ctx, m, world.HolderFactoryProducts, f.Name, f.Products)
}

func applyMarket(ctx context.Context, m common.Mediator, mk Market) error {
	if _, err := m.Send(ctx, &registryCommands.AddMarketCommand{
		Name: mk.Name, Balance: shared.MoneyFromFloat(mk.Balance),
	}); err != nil {
		return err
	}
	if err := restock(ctx, m, world.HolderMarket, mk.Name, mk.Stock); err != nil {
		return err
	}
	for _, good := range sortedKeys(mk.Prices) {
		if _, err := m.Send(ctx, &tradingCommands.SetPriceCommand{
			Market: mk.Name, Good: good, Price: shared.MoneyFromFloat(mk.Prices[good]),
		}); err != nil {
			return err
		}
	}
	return nil
}

func restock(ctx context.Context, m common.Mediator, kind world.HolderKind, holder string, goods map[string]int) error {
	for _, good := range sortedKeys(goods) {
		if _, err := m.Send(ctx, &inventoryCommands.RestockCommand{
			Holder: holder, HolderKind: kind, Good: good, Amount: goods[good],
		}); err != nil {
			return err
		}
	}
	return nil
}

// sortedKeys fixes the order seeded entries are journaled in
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
