package cli

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"
	messages "github.com/cucumber/messages/go/v21"

	inventoryCommands "github.com/andrescamacho/supplychain-go/internal/application/inventory/commands"
	"github.com/andrescamacho/supplychain-go/internal/application/ledger/queries"
	"github.com/andrescamacho/supplychain-go/internal/application/seed"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/domain/world"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeSupplyChainScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type supplyChainContext struct {
	session  *Session
	shell    *Shell
	out      bytes.Buffer
	lastErr  error
	failures int
}

func (c *supplyChainContext) reset() {
	if c.session != nil {
		_ = c.session.Close()
	}
	c.session = nil
	c.shell = nil
	c.out.Reset()
	c.lastErr = nil
	c.failures = 0
}

func (c *supplyChainContext) open(data *seed.Data) error {
	c.reset()
	s, err := OpenSession(context.Background(), config.Default(), SessionOptions{
		Seed:   data,
		Logger: silentLogger{},
	})
	if err != nil {
		return err
	}
	c.session = s
	c.shell = NewShell(s, &c.out)
	return nil
}

// hasTag reports whether a scenario carries tag, e.g. "@demo"
func hasTag(tags []*messages.PickleTag, tag string) bool {
	for _, t := range tags {
		if t.Name == tag {
			return true
		}
	}
	return false
}

// Given steps

func (c *supplyChainContext) anEmptyWorld() error {
	return c.open(&seed.Data{})
}

func (c *supplyChainContext) theDemoWorld() error {
	return c.open(seed.Default())
}

func (c *supplyChainContext) factoryHasInStock(factory string, units int, good string) error {
	_, err := c.session.Send(context.Background(), &inventoryCommands.RestockCommand{
		Holder: factory, HolderKind: world.HolderFactoryProducts, Good: good, Amount: units,
	})
	return err
}

// When steps

func (c *supplyChainContext) iRun(line string) error {
	c.out.Reset()
	c.failures = 0
	_, c.lastErr = c.shell.Execute(context.Background(), line)
	if c.lastErr != nil {
		c.failures = 1
	}
	return nil
}

func (c *supplyChainContext) iRunScript(script *godog.DocString) error {
	c.out.Reset()
	c.lastErr = nil
	failures, err := c.shell.Run(context.Background(), strings.NewReader(script.Content), false)
	c.failures = failures
	return err
}

// Then steps

func (c *supplyChainContext) theCommandSucceeds() error {
	if c.lastErr != nil {
		return fmt.Errorf("expected success, got %v", c.lastErr)
	}
	if c.failures > 0 {
		return fmt.Errorf("expected success, %d line(s) failed:\n%s", c.failures, c.out.String())
	}
	return nil
}

func (c *supplyChainContext) theCommandFailsWith(kind string) error {
	if c.lastErr == nil {
		return fmt.Errorf("expected %s, command succeeded", kind)
	}
	if got := shared.KindOf(c.lastErr); string(got) != kind {
		return fmt.Errorf("expected %s, got %q (%v)", kind, got, c.lastErr)
	}
	return nil
}

func (c *supplyChainContext) theOutputContains(text string) error {
	if !strings.Contains(c.out.String(), text) {
		return fmt.Errorf("output does not contain %q:\n%s", text, c.out.String())
	}
	return nil
}

func (c *supplyChainContext) partyHasBalance(kind, name, expected string) error {
	var balance shared.Money
	switch kind {
	case "factory":
		f, err := c.session.World.Factory(name)
		if err != nil {
			return err
		}
		balance = f.Balance
	case "market":
		m, err := c.session.World.Market(name)
		if err != nil {
			return err
		}
		balance = m.Balance
	default:
		cu, err := c.session.World.Customer(name)
		if err != nil {
			return err
		}
		balance = cu.Balance
	}

	if balance.String() != expected {
		return fmt.Errorf("expected %s %s to have balance %s, got %s", kind, name, expected, balance)
	}
	return nil
}

func (c *supplyChainContext) partyHolds(kind, name string, expected int, good string) error {
	var stock map[string]int
	switch kind {
	case "factory":
		f, err := c.session.World.Factory(name)
		if err != nil {
			return err
		}
		stock = f.Products
	case "market":
		m, err := c.session.World.Market(name)
		if err != nil {
			return err
		}
		stock = m.Stock
	default:
		cu, err := c.session.World.Customer(name)
		if err != nil {
			return err
		}
		stock = cu.Inventory
	}

	if stock[good] != expected {
		return fmt.Errorf("expected %s %s to hold %d %s, got %d", kind, name, expected, good, stock[good])
	}
	return nil
}

func (c *supplyChainContext) factoryHasMaterialLeft(name string, expected int, material string) error {
	f, err := c.session.World.Factory(name)
	if err != nil {
		return err
	}
	if f.Materials[material] != expected {
		return fmt.Errorf("expected %s to have %d %s left, got %d", name, expected, material, f.Materials[material])
	}
	return nil
}

func (c *supplyChainContext) thereAreFactories(expected int) error {
	if got := len(c.session.World.Factories()); got != expected {
		return fmt.Errorf("expected %d factories, got %d", expected, got)
	}
	return nil
}

func (c *supplyChainContext) theJournalHasEntries(expected int) error {
	result, err := c.session.Send(context.Background(), &queries.GetTransactionsQuery{})
	if err != nil {
		return err
	}
	if got := result.(*queries.GetTransactionsResponse).Total; got != expected {
		return fmt.Errorf("expected %d journal entries, got %d", expected, got)
	}
	return nil
}

func InitializeSupplyChainScenario(ctx *godog.ScenarioContext) {
	c := &supplyChainContext{}

	// Scenarios tagged @demo start from the built-in demo world
	ctx.Before(func(goCtx context.Context, sc *godog.Scenario) (context.Context, error) {
		c.reset()
		if hasTag(sc.Tags, "@demo") {
			return goCtx, c.theDemoWorld()
		}
		return goCtx, nil
	})
	ctx.After(func(goCtx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		c.reset()
		return goCtx, nil
	})

	// Given steps
	ctx.Step(`^an empty world$`, c.anEmptyWorld)
	ctx.Step(`^the demo world$`, c.theDemoWorld)
	ctx.Step(`^factory "([^"]*)" has (\d+) "([^"]*)" in stock$`, c.factoryHasInStock)

	// When steps
	ctx.Step(`^I run "([^"]*)"$`, c.iRun)
	ctx.Step(`^I run:$`, c.iRunScript)

	// Then steps
	ctx.Step(`^the command succeeds$`, c.theCommandSucceeds)
	ctx.Step(`^the command fails with ([A-Z_]+)$`, c.theCommandFailsWith)
	ctx.Step(`^the output contains "([^"]*)"$`, c.theOutputContains)
	ctx.Step(`^(factory|market|customer) "([^"]*)" has balance ([0-9.]+)$`, c.partyHasBalance)
	ctx.Step(`^(factory|market|customer) "([^"]*)" holds (\d+) "([^"]*)"$`, c.partyHolds)
	ctx.Step(`^factory "([^"]*)" has (\d+) "([^"]*)" left$`, c.factoryHasMaterialLeft)
	ctx.Step(`^there (?:is|are) (\d+) factor(?:y|ies)$`, c.thereAreFactories)
	ctx.Step(`^the journal has (\d+) entr(?:y|ies)$`, c.theJournalHasEntries)
}
