package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
)

var (
	// Global flags
	configPath string
	seedPath   string
	emptyWorld bool
	logLevel   string
	verbose    bool
)

// noSessionAnnotation marks commands that run without opening a world
const noSessionAnnotation = "no-session"

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	session := &Session{}

	rootCmd := &cobra.Command{
		Use:   "supplychain",
		Short: "Supply chain simulator",
		Long: `A toy supply chain: producers supply raw materials, factories turn them into
products, markets resell products to customers.

Every invocation starts from the seed world (the built-in demo unless --seed or
seed.path is set). Use "shell" or "run" to issue many commands against one world.

Examples:
  supplychain shell
  supplychain run scenario.txt --seed world.yaml
  supplychain factory list
  supplychain config show`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !needsSession(cmd) {
				return nil
			}
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				return err
			}
			applyFlagOverrides(cfg)
			return session.open(cmd.Context(), cfg, SessionOptions{})
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return session.Close()
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&seedPath, "seed", "", "YAML seed file describing the starting world")
	rootCmd.PersistentFlags().BoolVar(&emptyWorld, "empty", false, "Start with an empty world")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override logging.level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Shorthand for --log-level debug")

	configCmd := NewConfigCommand(&configPath)
	configCmd.Annotations = map[string]string{noSessionAnnotation: "true"}
	rootCmd.AddCommand(configCmd)

	rootCmd.AddCommand(newShellCommand(session))
	rootCmd.AddCommand(newRunCommand(session))
	addWorldCommands(rootCmd, session)

	return rootCmd
}

func needsSession(cmd *cobra.Command) bool {
	if cmd.Name() == "help" {
		return false
	}
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[noSessionAnnotation] == "true" {
			return false
		}
	}
	return cmd.Runnable()
}

func applyFlagOverrides(cfg *config.Config) {
	if seedPath != "" {
		cfg.Seed.Path = seedPath
	}
	if emptyWorld {
		cfg.Seed.Disabled = true
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}
