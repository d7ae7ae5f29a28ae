package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	registryCommands "github.com/andrescamacho/supplychain-go/internal/application/registry/commands"
	registryQueries "github.com/andrescamacho/supplychain-go/internal/application/registry/queries"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
)

// newCustomerCommand creates the customer command with subcommands
func newCustomerCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customer",
		Short: "Customers",
		Long: `Manage customers. Customers buy goods from markets at the market's ask price.

Examples:
  customer add John 500
  customer buy John "Downtown Mall" Chair 1
  customer show John`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <balance>",
		Short: "Register a customer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			balance, err := parseMoney("balance", args[1])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &registryCommands.AddCustomerCommand{Name: args[0], Balance: balance})
			if err != nil {
				return err
			}
			c := result.(*registryCommands.AddCustomerResponse).Customer
			fmt.Fprintf(cmd.OutOrStdout(), "Added customer %s (Balance: %s)\n", c.Name, c.Balance)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List customers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.ListCustomersQuery{})
			if err != nil {
				return err
			}
			customers := result.(*registryQueries.ListCustomersResponse).Customers
			out := cmd.OutOrStdout()
			if len(customers) == 0 {
				fmt.Fprintln(out, "No customers")
				return nil
			}

			w := newTable(out)
			fmt.Fprintln(w, "Name\tBalance\tInventory")
			for _, c := range customers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Balance, formatStock(c.Inventory))
			}
			return w.Flush()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Show a customer's balance and inventory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.GetCustomerQuery{Name: args[0]})
			if err != nil {
				return err
			}
			c := result.(*world.CustomerView)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", c.Name)
			fmt.Fprintf(out, "Balance:   %s\n", c.Balance)
			fmt.Fprintf(out, "Inventory: %s\n", formatStock(c.Inventory))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "buy <customer> <market> <good> <amount>",
		Short: "Buy goods from a market at its ask price",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSellToCustomer(cmd, s, args[1], args[0], args[2], args[3])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "discard <customer> <good> <amount>",
		Short: "Throw away owned goods",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiscard(cmd, s, world.HolderCustomer, args)
		},
	})

	return cmd
}

// newBalancesCommand shows every party's cash
func newBalancesCommand(s *Session) *cobra.Command {
	return &cobra.Command{
		Use:   "balances",
		Short: "Show the cash balance of every factory, market and customer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.GetBalancesQuery{})
			if err != nil {
				return err
			}
			r := result.(*registryQueries.GetBalancesResponse)

			w := newTable(cmd.OutOrStdout())
			fmt.Fprintln(w, "Name\tRole\tBalance")
			for _, b := range r.Balances {
				fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.Role, b.Balance)
			}
			fmt.Fprintf(w, "Total\t\t%s\n", r.Total)
			return w.Flush()
		},
	}
}
