package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/andrescamacho/supplychain-go/internal/adapters/metrics"
	"github.com/andrescamacho/supplychain-go/internal/adapters/persistence"
	"github.com/andrescamacho/supplychain-go/internal/application/common"
	"github.com/andrescamacho/supplychain-go/internal/application/seed"
	"github.com/andrescamacho/supplychain-go/internal/application/setup"
	"github.com/andrescamacho/supplychain-go/internal/domain/ledger"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/database"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/logging"
)

// Session is one running simulation: the world, its journal and the mediator in front of them.
// Every CLI command talks to the world through Send.
type Session struct {
	Config *config.Config
	World  *world.World

	mediator common.Mediator
	logger   common.Logger
	closers  []func() error
}

// SessionOptions overrides parts of the loaded configuration
type SessionOptions struct {
	// Seed replaces the configured seed data when set
	Seed *seed.Data
	// Clock stamps journal entries; nil uses the real clock
	Clock shared.Clock
	// Logger replaces the logger built from config
	Logger common.Logger
}

// OpenSession wires the journal, world, mediator and metrics described by cfg and seeds the world
func OpenSession(ctx context.Context, cfg *config.Config, opts SessionOptions) (*Session, error) {
	s := &Session{}
	if err := s.open(ctx, cfg, opts); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) open(ctx context.Context, cfg *config.Config, opts SessionOptions) error {
	s.Config, s.World, s.logger = cfg, world.New(), opts.Logger

	if s.logger == nil {
		logger, closer, err := logging.New(cfg.Logging)
		if err != nil {
			return err
		}
		s.closers = append(s.closers, closer.Close)
		s.logger = logging.NewAdapter(logger)
	}

	repo, err := s.openJournal(cfg.Database)
	if err != nil {
		s.Close()
		return err
	}

	var commandMetrics *metrics.CommandMetricsCollector
	if cfg.Metrics.Enabled {
		if commandMetrics, err = s.initMetrics(); err != nil {
			s.Close()
			return err
		}
	}

	registry := setup.NewHandlerRegistry(s.World, repo, opts.Clock)
	s.mediator, err = registry.CreateConfiguredMediator(
		common.LoggingMiddleware(),
		metrics.PrometheusMiddleware(commandMetrics),
	)
	if err != nil {
		s.Close()
		return fmt.Errorf("failed to configure mediator: %w", err)
	}

	data := opts.Seed
	if data == nil {
		if data, err = cfg.Seed.LoadSeed(); err != nil {
			s.Close()
			return err
		}
	}
	if err := seed.Apply(s.context(ctx), s.mediator, data); err != nil {
		s.Close()
		return fmt.Errorf("failed to seed world: %w", err)
	}

	if cfg.Metrics.Enabled {
		if err := s.startMetrics(ctx); err != nil {
			s.Close()
			return err
		}
	}

	return nil
}

func (s *Session) openJournal(cfg config.DatabaseConfig) (ledger.TransactionRepository, error) {
	if !cfg.UsesDatabase() {
		return persistence.NewMemoryTransactionRepository(), nil
	}

	db, err := database.NewConnection(&cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	s.closers = append(s.closers, func() error { return database.Close(db) })

	if err := database.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate journal: %w", err)
	}
	return persistence.NewGormTransactionRepository(db), nil
}

func (s *Session) initMetrics() (*metrics.CommandMetricsCollector, error) {
	metrics.InitRegistry()
	s.closers = append(s.closers, func() error {
		metrics.Reset()
		return nil
	})

	supplyChain := metrics.NewSupplyChainMetricsCollector()
	if err := supplyChain.Register(); err != nil {
		return nil, fmt.Errorf("failed to register supply chain metrics: %w", err)
	}
	metrics.SetGlobalSupplyChainCollector(supplyChain)

	commands := metrics.NewCommandMetricsCollector()
	if err := commands.Register(); err != nil {
		return nil, fmt.Errorf("failed to register command metrics: %w", err)
	}
	return commands, nil
}

func (s *Session) startMetrics(ctx context.Context) error {
	cfg := s.Config.Metrics

	financial := metrics.NewFinancialMetricsCollector(s.mediator, s.logger)
	if err := financial.Register(); err != nil {
		return fmt.Errorf("failed to register financial metrics: %w", err)
	}
	financial.Start(s.context(ctx), cfg.BalanceInterval)
	s.closers = append(s.closers, func() error {
		financial.Stop()
		return nil
	})

	server, err := metrics.NewServer(cfg.Host, cfg.Port, cfg.Path)
	if err != nil {
		return err
	}
	server.Start()
	s.closers = append(s.closers, func() error {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	s.logger.Log("INFO", "Metrics server listening", map[string]interface{}{
		"address": server.Addr(),
		"path":    cfg.Path,
	})
	return nil
}

func (s *Session) context(ctx context.Context) context.Context {
	return common.WithLogger(ctx, s.logger)
}

// Send dispatches a command or query with the session logger attached
func (s *Session) Send(ctx context.Context, request common.Request) (common.Response, error) {
	return s.mediator.Send(s.context(ctx), request)
}

// Close releases resources in reverse order of acquisition
func (s *Session) Close() error {
	var firstErr error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	s.closers = nil
	return firstErr
}
