package cli

import (
	"fmt"
	"io"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
)

// NewConfigCommand creates the config command with subcommands
func NewConfigCommand(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration settings",
		Long: `Configuration is loaded from multiple sources with priority:
1. Environment variables (SC_* prefix, e.g. SC_DATABASE_TYPE=sqlite)
2. Config file (config.yaml in ., ./configs or /etc/supplychain)
3. Default values`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, err := config.LoadConfig(*configPath)
			if err != nil {
				fmt.Fprintf(out, "Warning: Failed to load config: %v\n", err)
				fmt.Fprintln(out, "Using default configuration.")
				cfg = config.Default()
			}
			displayConfig(out, cfg)
			return nil
		},
	})

	return cmd
}

func displayConfig(out io.Writer, cfg *config.Config) {
	fmt.Fprintln(out, "Supply Chain Configuration")
	fmt.Fprintln(out, "==========================")

	fmt.Fprintln(out, "\nJournal:")
	fmt.Fprintf(out, "  Backend:          %s\n", cfg.Database.Type)
	switch cfg.Database.Type {
	case "postgres":
		if cfg.Database.URL != "" {
			fmt.Fprintf(out, "  URL:              %s\n", maskPassword(cfg.Database.URL))
		} else {
			fmt.Fprintf(out, "  Host:             %s\n", cfg.Database.Host)
			fmt.Fprintf(out, "  Port:             %d\n", cfg.Database.Port)
			fmt.Fprintf(out, "  Database:         %s\n", cfg.Database.Name)
			fmt.Fprintf(out, "  User:             %s\n", cfg.Database.User)
		}
		fmt.Fprintf(out, "  Max Connections:  %d\n", cfg.Database.Pool.MaxOpen)
	case "sqlite":
		fmt.Fprintf(out, "  Path:             %s\n", cfg.Database.Path)
	}

	fmt.Fprintln(out, "\nSeed:")
	switch {
	case cfg.Seed.Disabled:
		fmt.Fprintln(out, "  Source:           (empty world)")
	case cfg.Seed.Path != "":
		fmt.Fprintf(out, "  Source:           %s\n", cfg.Seed.Path)
	default:
		fmt.Fprintln(out, "  Source:           built-in demo world")
	}

	fmt.Fprintln(out, "\nMetrics:")
	fmt.Fprintf(out, "  Enabled:          %t\n", cfg.Metrics.Enabled)
	if cfg.Metrics.Enabled {
		fmt.Fprintf(out, "  Endpoint:         %s:%d%s\n", cfg.Metrics.Host, cfg.Metrics.Port, cfg.Metrics.Path)
		fmt.Fprintf(out, "  Balance Interval: %s\n", cfg.Metrics.BalanceInterval)
	}

	fmt.Fprintln(out, "\nLogging:")
	fmt.Fprintf(out, "  Level:            %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "  Format:           %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "  Output:           %s\n", cfg.Logging.Output)
}

// maskPassword hides the password part of a connection URL
func maskPassword(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	if _, has := u.User.Password(); has {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}
