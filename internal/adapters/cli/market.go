package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	inventoryCommands "github.com/andrescamacho/supplychain-go/internal/application/inventory/commands"
	registryCommands "github.com/andrescamacho/supplychain-go/internal/application/registry/commands"
	registryQueries "github.com/andrescamacho/supplychain-go/internal/application/registry/queries"
	tradingCommands "github.com/andrescamacho/supplychain-go/internal/application/trading/commands"
	tradingQueries "github.com/andrescamacho/supplychain-go/internal/application/trading/queries"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// newMarketCommand creates the market command with subcommands
func newMarketCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Markets and pricing",
		Long: `Manage markets. Markets buy finished goods from factories and sell them to
customers at the ask price set per good.

Examples:
  market add "Downtown Mall" 5000
  market price set "Downtown Mall" Chair 120
  market price get "Downtown Mall" Chair
  market sell "Downtown Mall" John Chair 1
  market show "Downtown Mall"`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <balance>",
		Short: "Register a market",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := parseMoney("balance", args[1])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &registryCommands.AddMarketCommand{Name: args[0], Balance: balance})
			if err != nil {
				return err
			}
			m := result.(*registryCommands.AddMarketResponse).Market
			fmt.Fprintf(cmd.OutOrStdout(), "Added market %s (Balance: %s)\n", m.Name, m.Balance)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List markets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.ListMarketsQuery{})
			if err != nil {
				return err
			}
			markets := result.(*registryQueries.ListMarketsResponse).Markets
			out := cmd.OutOrStdout()
			if len(markets) == 0 {
				fmt.Fprintln(out, "No markets")
				return nil
			}

			w := newTable(out)
			fmt.Fprintln(w, "Name\tBalance\tStock")
			for _, m := range markets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", m.Name, m.Balance, formatStock(m.Stock))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a market's stock and prices",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.GetMarketQuery{Name: args[0]})
			if err != nil {
				return err
			}
			return displayMarket(cmd, result.(*world.MarketView))
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "sell <market> <customer> <good> <amount>",
		Short: "Sell goods to a customer at the market's ask price",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSellToCustomer(cmd, s, args[0], args[1], args[2], args[3])
		},
	})

	cmd.AddCommand(newMarketBuyCommand(s))

	cmd.AddCommand(&cobra.Command{
		Use:   "restock <market> <good> <amount>",
		Short: "Add goods to a market's shelves (no cash moves)",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, err := parseAmount("amount", args[2])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &inventoryCommands.RestockCommand{
				Holder: args[0], HolderKind: world.HolderMarket, Good: args[1], Amount: amount,
			})
			if err != nil {
				return err
			}
			r := result.(*inventoryCommands.AdjustStockResponse)
			fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d %s\n", r.Holder, r.Units, r.Good)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "discard <market> <good> <amount>",
		Short: "Destroy goods on a market's shelves",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscard(cmd, s, world.HolderMarket, args)
		},
	})

	cmd.AddCommand(newMarketPriceCommand(s))

	return cmd
}

func newMarketPriceCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Ask prices",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <market> <good> <price>",
		Short: "Set the ask price of a good",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			price, err := parseMoney("price", args[2])
			if err != nil {
				return err
			}
			if _, err := s.Send(cmd.Context(), &tradingCommands.SetPriceCommand{
				Market: args[0], Good: args[1], Price: price,
			}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s sells %s at %s\n", args[0], args[1], price)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <market> <good>",
		Short: "Show the ask price of a good",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &tradingQueries.GetPriceQuery{Market: args[0], Good: args[1]})
			if err != nil {
				return err
			}
			r := result.(*tradingQueries.GetPriceResponse)
			if !r.ForSale {
				fmt.Fprintf(cmd.OutOrStdout(), "%s has no price for %s\n", args[0], args[1])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[1], r.Price)
			return nil
		},
	})

	return cmd
}

// newMarketBuyCommand is "factory sell" seen from the market's side
func newMarketBuyCommand(s *Session) *cobra.Command {
	var price string

	cmd := &cobra.Command{
		Use:   "buy <market> <factory> <good> <amount>",
		Short: "Buy finished goods from a factory",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSellToMarket(cmd, s, args[1], args[0], args[2], args[3], price)
		},
	}

	cmd.Flags().StringVar(&price, "price", "", "Unit price (defaults to the design cost)")
	return cmd
}

func runSellToCustomer(cmd *cobra.Command, s *Session, market, customer, good, amountArg string) error {
	amount, err := parseAmount("amount", amountArg)
	if err != nil {
		return err
	}
	result, err := s.Send(cmd.Context(), &tradingCommands.SellToCustomerCommand{
		Market: market, Customer: customer, Good: good, Amount: amount,
	})
	if err != nil {
		return err
	}
	displayReceipt(cmd, result.(*tradingCommands.TradeResponse))
	return nil
}

func displayMarket(cmd *cobra.Command, m *world.MarketView) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n", m.Name)
	fmt.Fprintf(out, "Balance: %s\n", m.Balance)

	goods := sortedGoods(m.Stock)
	for _, good := range sortedGoods(m.Prices) {
		if _, stocked := m.Stock[good]; !stocked {
			goods = append(goods, good)
		}
	}
	if len(goods) == 0 {
		fmt.Fprintln(out, "No goods")
		return nil
	}

	w := newTable(out)
	fmt.Fprintln(w, "Good\tUnits\tPrice")
	for _, good := range goods {
		price := "-"
		if p, ok := m.Prices[good]; ok {
			price = p.String()
		}
		fmt.Fprintf(w, "%s\t%d\t%s\n", good, m.Stock[good], price)
	}
	return w.Flush()
}
