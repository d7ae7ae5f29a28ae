package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	inventoryCommands "github.com/andrescamacho/supplychain-go/internal/application/inventory/commands"
	manufacturingCommands "github.com/andrescamacho/supplychain-go/internal/application/manufacturing/commands"
	registryCommands "github.com/andrescamacho/supplychain-go/internal/application/registry/commands"
	registryQueries "github.com/andrescamacho/supplychain-go/internal/application/registry/queries"
	tradingCommands "github.com/andrescamacho/supplychain-go/internal/application/trading/commands"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// newFactoryCommand creates the factory command with subcommands
func newFactoryCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "factory",
		Short: "Factories, designs and production",
		Long: `Manage factories. A factory turns raw materials and cash into finished goods
following its product designs, then sells them to markets.

Examples:
  factory add "Furniture Factory" 2000
  factory design add "Furniture Factory" Chair 50 Wood:4
  factory materials add "Furniture Factory" Wood 20
  factory manufacture "Furniture Factory" Chair 5
  factory sell "Furniture Factory" "Downtown Mall" Chair 3 --price 80
  factory show "Furniture Factory"`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <balance>",
		Short: "Register a factory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := parseMoney("balance", args[1])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &registryCommands.AddFactoryCommand{Name: args[0], Balance: balance})
			if err != nil {
				return err
			}
			f := result.(*registryCommands.AddFactoryResponse).Factory
			fmt.Fprintf(cmd.OutOrStdout(), "Added factory %s (Balance: %s)\n", f.Name, f.Balance)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List factories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.ListFactoriesQuery{})
			if err != nil {
				return err
			}
			factories := result.(*registryQueries.ListFactoriesResponse).Factories
			out := cmd.OutOrStdout()
			if len(factories) == 0 {
				fmt.Fprintln(out, "No factories")
				return nil
			}

			tree := NewTreeFormatter(false)
			w := newTable(out)
			fmt.Fprintln(w, "Name\tBalance\tDesigns\tProducts")
			for _, f := range factories {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, f.Balance, tree.FormatDesignSummary(f), formatStock(f.Products))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a factory's designs and stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.GetFactoryQuery{Name: args[0]})
			if err != nil {
				return err
			}
			displayFactory(cmd, result.(*world.FactoryView))
			return nil
		},
	})

	cmd.AddCommand(newFactoryDesignCommand(s))
	cmd.AddCommand(newFactoryMaterialsCommand(s))
	cmd.AddCommand(newFactoryManufactureCommand(s))
	cmd.AddCommand(newFactorySellCommand(s))
	cmd.AddCommand(newFactoryDiscardCommand(s))

	return cmd
}

func newFactoryDesignCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Product designs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <factory> <product> <cost> [material:amount ...]",
		Short: "Add a product design to a factory",
		Long: `Add a product design. The cost is charged per unit produced; each ingredient
is consumed per unit produced.

Example:
  factory design add "Electronics Factory" Phone 200 Plastic:2 Gold:1`,
		Args: cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, err := parseMoney("cost", args[2])
			if err != nil {
				return err
			}
			ingredients, err := parseIngredients(args[3:])
			if err != nil {
				return err
			}
			if _, err := s.Send(cmd.Context(), &manufacturingCommands.AddDesignCommand{
				Factory: args[0], Product: args[1], Cost: cost, Ingredients: ingredients,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s can now make %s\n", args[0], args[1])
			return nil
		},
	})

	return cmd
}

func newFactoryMaterialsCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "materials",
		Short: "Raw material stock",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <factory> <material> <amount>",
		Short: "Deliver raw materials to a factory (no cash moves)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &manufacturingCommands.ReceiveMaterialsCommand{
				Factory: args[0], Material: args[1], Amount: amount,
			})
			if err != nil {
				return err
			}
			f := result.(*manufacturingCommands.ReceiveMaterialsResponse).Factory
			fmt.Fprintf(cmd.OutOrStdout(), "%s now holds %d %s\n", f.Name, f.Materials[args[1]], args[1])
			return nil
		},
	})

	return cmd
}

func newFactoryManufactureCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "manufacture <factory> <product> <amount>",
		Short: "Produce units of a design",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &manufacturingCommands.ManufactureCommand{
				Factory: args[0], Product: args[1], Amount: amount,
			})
			if err != nil {
				return err
			}

			p := result.(*manufacturingCommands.ManufactureResponse).Production
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s produced %d %s for %s\n", p.Factory, p.Amount, p.Product, p.Cost)
			for _, req := range p.Consumed {
				fmt.Fprintf(out, "  consumed %d %s\n", req.Units, req.Material)
			}
			fmt.Fprintf(out, "  balance %s -> %s\n", p.BalanceBefore, p.BalanceAfter)
			return nil
		},
	}
}

func newFactorySellCommand(s *Session) *cobra.Command {
	var price string

	cmd := &cobra.Command{
		Use:   "sell <factory> <market> <good> <amount>",
		Short: "Sell finished goods to a market",
		Long: `Sell finished goods to a market. Without --price the factory charges its
design cost per unit.`,
		Args: cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSellToMarket(cmd, s, args[0], args[1], args[2], args[3], price)
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Unit price (defaults to the design cost)")
	return cmd
}

func newFactoryDiscardCommand(s *Session) *cobra.Command {
	var materials bool

	cmd := &cobra.Command{
		Use:   "discard <factory> <good> <amount>",
		Short: "Destroy finished goods (or raw materials with --materials)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := world.HolderFactoryProducts
			if materials {
				kind = world.HolderFactoryMaterial
			}
			return runDiscard(cmd, s, kind, args)
		},
	}

	cmd.Flags().BoolVar(&materials, "materials", false, "Discard raw materials instead of finished goods")
	return cmd
}

func runSellToMarket(cmd *cobra.Command, s *Session, factory, market, good, amountArg, price string) error {
	amount, err := parseAmount("amount", amountArg)
	if err != nil {
		return err
	}
	unitPrice := shared.Zero()
	if price != "" {
		if unitPrice, err = parseMoney("price", price); err != nil {
			return err
		}
	}
	result, err := s.Send(cmd.Context(), &tradingCommands.SellToMarketCommand{
		Factory: factory, Market: market, Good: good, Amount: amount, UnitPrice: unitPrice,
	})
	if err != nil {
		return err
	}
	displayReceipt(cmd, result.(*tradingCommands.TradeResponse))
	return nil
}

// runDiscard handles "<holder> <good> <amount>" for every holder kind
func runDiscard(cmd *cobra.Command, s *Session, kind world.HolderKind, args []string) error {
	amount, err := parseAmount("amount", args[2])
	if err != nil {
		return err
	}
	result, err := s.Send(cmd.Context(), &inventoryCommands.DiscardCommand{
		Holder: args[0], HolderKind: kind, Good: args[1], Amount: amount,
	})
	if err != nil {
		return err
	}
	r := result.(*inventoryCommands.AdjustStockResponse)
	fmt.Fprintf(cmd.OutOrStdout(), "Discarded %d %s from %s (%d left)\n", amount, r.Good, r.Holder, r.Units)
	return nil
}

func displayFactory(cmd *cobra.Command, f *world.FactoryView) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", f.Name)
	fmt.Fprintf(out, "Balance:   %s\n", f.Balance)
	fmt.Fprintf(out, "Materials: %s\n", formatStock(f.Materials))
	fmt.Fprintf(out, "Products:  %s\n", formatStock(f.Products))
	fmt.Fprintln(out, "Designs:")
	fmt.Fprintln(out, NewTreeFormatter(false).FormatDesigns(*f))
}

func displayReceipt(cmd *cobra.Command, response *tradingCommands.TradeResponse) {
	r := response.Receipt
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s sold %d %s to %s at %s each (total %s)\n",
		r.Seller, r.Amount, r.Good, r.Buyer, r.UnitPrice, r.Total)
	fmt.Fprintf(out, "  %s: %s -> %s\n", r.Seller, r.SellerBalanceBefore, r.SellerBalanceAfter)
	fmt.Fprintf(out, "  %s: %s -> %s\n", r.Buyer, r.BuyerBalanceBefore, r.BuyerBalanceAfter)
}
