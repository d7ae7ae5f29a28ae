package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/application/seed"
	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
)

type silentLogger struct{}

func (silentLogger) Log(level, message string, metadata map[string]interface{}) {}

func newTestSession(t *testing.T, data *seed.Data) *Session {
	t.Helper()
	s, err := OpenSession(context.Background(), config.Default(), SessionOptions{
		Seed:   data,
		Logger: silentLogger{},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestShell_FurnitureSupplyChain(t *testing.T) {
	s := newTestSession(t, seed.Default())
	var out bytes.Buffer
	shell := NewShell(s, &out)
	ctx := context.Background()

	lines := []struct {
		line string
		want string
	}{
		{`factory materials add "Furniture Factory" Wood 20`, "Furniture Factory now holds 20 Wood"},
		{`factory manufacture "Furniture Factory" Chair 2`, "Furniture Factory produced 2 Chair for 100.00"},
		{`market buy 'Downtown Mall' 'Furniture Factory' Chair 2 --price 80`, "Furniture Factory sold 2 Chair to Downtown Mall at 80.00 each (total 160.00)"},
		{`market price set 'Downtown Mall' Chair 120`, "Downtown Mall sells Chair at 120.00"},
		{`customer buy John 'Downtown Mall' Chair 1`, "Downtown Mall sold 1 Chair to John at 120.00 each (total 120.00)"},
		{`market price get 'Downtown Mall' Table`, "Downtown Mall has no price for Table"},
	}

	for _, l := range lines {
		out.Reset()
		exit, err := shell.Execute(ctx, l.line)
		require.NoError(t, err, l.line)
		assert.False(t, exit)
		assert.Contains(t, out.String(), l.want, l.line)
	}

	john, err := s.World.Customer("John")
	require.NoError(t, err)
	assert.Equal(t, "380.00", john.Balance.String())
	assert.Equal(t, map[string]int{"Chair": 1}, john.Inventory)

	factory, err := s.World.Factory("Furniture Factory")
	require.NoError(t, err)
	assert.Equal(t, "2060.00", factory.Balance.String())
	assert.Equal(t, 12, factory.Materials["Wood"])
}

func TestShell_ExecuteReportsDomainErrors(t *testing.T) {
	s := newTestSession(t, seed.Default())
	shell := NewShell(s, &bytes.Buffer{})
	ctx := context.Background()

	tests := []struct {
		line string
		kind shared.ErrorKind
	}{
		{`factory manufacture "Furniture Factory" Chair 1`, shared.KindMaterialShortage},
		{`factory manufacture "Furniture Factory" Table 1`, shared.KindProductUnavailable},
		{`factory manufacture "Furniture Factory" Chair 0`, shared.KindInvalidInput},
		{`factory manufacture "Furniture Factory" Chair lots`, shared.KindInvalidInput},
		{`customer buy John "Downtown Mall" Chair 1`, shared.KindPriceNotSet},
		{`customer buy Nobody "Downtown Mall" Chair 1`, shared.KindNotFound},
		{`factory add "Furniture Factory" 10`, shared.KindDuplicateName},
		{`market price set "Downtown Mall" Chair 0`, shared.KindInvalidPrice},
		{`market discard "Downtown Mall" Chair 1`, shared.KindProductUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			_, err := shell.Execute(ctx, tt.line)
			require.Error(t, err)
			assert.Equal(t, tt.kind, shared.KindOf(err))
		})
	}
}

func TestShell_ExecuteIgnoresBlankLinesAndComments(t *testing.T) {
	shell := NewShell(newTestSession(t, &seed.Data{}), &bytes.Buffer{})

	for _, line := range []string{"", "   ", "# nothing to do"} {
		exit, err := shell.Execute(context.Background(), line)
		assert.NoError(t, err)
		assert.False(t, exit)
	}
}

func TestShell_RunCountsFailuresAndStopsAtExit(t *testing.T) {
	s := newTestSession(t, &seed.Data{})
	var out bytes.Buffer
	shell := NewShell(s, &out)

	script := strings.Join([]string{
		"# build a tiny world",
		"factory add Acme 100",
		"factory add Acme 200",
		"customer add Bob 50",
		`market show "Nowhere"`,
		"exit",
		"customer add Carol 50",
	}, "\n")

	failures, err := shell.Run(context.Background(), strings.NewReader(script), false)

	require.NoError(t, err)
	assert.Equal(t, 2, failures)
	assert.Contains(t, out.String(), "Added factory Acme (Balance: 100.00)")
	assert.Contains(t, out.String(), "Error [DUPLICATE_NAME]")
	assert.Contains(t, out.String(), "Error [NOT_FOUND]")
	assert.Len(t, s.World.Customers(), 1, "lines after exit are not run")

	factory, err := s.World.Factory("Acme")
	require.NoError(t, err)
	assert.Equal(t, "100.00", factory.Balance.String(), "the duplicate leaves the first factory untouched")
}

func TestShell_RunEchoesLines(t *testing.T) {
	s := newTestSession(t, &seed.Data{})
	s.Config.Shell.Echo = true
	var out bytes.Buffer

	_, err := NewShell(s, &out).Run(context.Background(), strings.NewReader("customer add Bob 50\n"), false)

	require.NoError(t, err)
	assert.Equal(t, "supplychain> customer add Bob 50\nAdded customer Bob (Balance: 50.00)\n", out.String())
}

func TestShell_TokenizeErrorsCountAsFailures(t *testing.T) {
	var out bytes.Buffer
	failures, err := NewShell(newTestSession(t, &seed.Data{}), &out).
		Run(context.Background(), strings.NewReader(`factory add "Acme 100`), false)

	require.NoError(t, err)
	assert.Equal(t, 1, failures)
	assert.Contains(t, out.String(), "Error: cannot split")
	assert.Contains(t, out.String(), "closing quote")
}

func TestBalancesCommand(t *testing.T) {
	s := newTestSession(t, seed.Default())
	var out bytes.Buffer

	_, err := NewShell(s, &out).Execute(context.Background(), "balances")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Furniture Factory")
	assert.Regexp(t, `Total\s+15300\.00`, out.String())
}

func TestRunScript_StopOnError(t *testing.T) {
	s := newTestSession(t, &seed.Data{})
	var out bytes.Buffer
	shell := NewShell(s, &out)

	path := filepath.Join(t.TempDir(), "world.txt")
	require.NoError(t, os.WriteFile(path, []byte("customer add Bob 50\ncustomer add Bob 60\ncustomer add Carol 70\n"), 0o644))

	failures, err := runScript(context.Background(), shell, path, true)

	require.NoError(t, err)
	assert.Equal(t, 1, failures)
	assert.Len(t, s.World.Customers(), 1)

	_, err = runScript(context.Background(), shell, filepath.Join(t.TempDir(), "missing.txt"), true)
	assert.Error(t, err)
}
