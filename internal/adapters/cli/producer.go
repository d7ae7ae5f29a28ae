package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	registryCommands "github.com/andrescamacho/supplychain-go/internal/application/registry/commands"
	registryQueries "github.com/andrescamacho/supplychain-go/internal/application/registry/queries"
)

// newProducerCommand creates the producer command with subcommands
func newProducerCommand(s *Session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "producer",
		Short: "Raw material producers",
		Long: `Manage producers. A producer sells one raw material at a fixed cost per unit.

Examples:
  producer add Farm Wood 10
  producer edit-cost Farm 12.5
  producer list`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <name> <material> <cost>",
		Short: "Register a producer",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, err := parseMoney("cost", args[2])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &registryCommands.AddProducerCommand{
				Name: args[0], Material: args[1], Cost: cost,
			})
			if err != nil {
				return err
			}
			p := result.(*registryCommands.AddProducerResponse).Producer
			fmt.Fprintf(cmd.OutOrStdout(), "Added producer %s (%s at %s per unit)\n", p.Name, p.Material, p.Cost)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "edit-cost <name> <cost>",
		Short: "Change a producer's cost per unit",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, err := parseMoney("cost", args[1])
			if err != nil {
				return err
			}
			result, err := s.Send(cmd.Context(), &registryCommands.UpdateProducerCostCommand{
				Name: args[0], Cost: cost,
			})
			if err != nil {
				return err
			}
			p := result.(*registryCommands.UpdateProducerCostResponse).Producer
			fmt.Fprintf(cmd.OutOrStdout(), "%s now sells %s at %s per unit\n", p.Name, p.Material, p.Cost)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List producers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := s.Send(cmd.Context(), &registryQueries.ListProducersQuery{})
			if err != nil {
				return err
			}
			producers := result.(*registryQueries.ListProducersResponse).Producers
			out := cmd.OutOrStdout()
			if len(producers) == 0 {
				fmt.Fprintln(out, "No producers")
				return nil
			}

			w := newTable(out)
			fmt.Fprintln(w, "Name\tMaterial\tCost")
			for _, p := range producers {
				fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Material, p.Cost)
			}
			return w.Flush()
		},
	})

	return cmd
}
