package common

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/domain/shared"
)

type logEntry struct {
	level    string
	message  string
	metadata map[string]interface{}
}

type recordingLogger struct {
	entries []logEntry
}

func (l *recordingLogger) Log(level, message string, metadata map[string]interface{}) {
	l.entries = append(l.entries, logEntry{level: level, message: message, metadata: metadata})
}

type sampleCommand struct{}

func TestLoggingMiddleware(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantLevel   string
		wantMessage string
		wantKind    interface{}
	}{
		{name: "success", wantLevel: "DEBUG", wantMessage: "Request handled"},
		{
			name:        "domain rejection",
			err:         shared.NewNotFoundError("factory", "Acme"),
			wantLevel:   "DEBUG",
			wantMessage: "Request rejected",
			wantKind:    "NOT_FOUND",
		},
		{name: "infrastructure failure", err: errors.New("disk full"), wantLevel: "ERROR", wantMessage: "Request failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger := &recordingLogger{}
			ctx := WithLogger(context.Background(), logger)
			next := func(ctx context.Context, request Request) (Response, error) {
				return nil, tt.err
			}

			_, err := LoggingMiddleware()(ctx, &sampleCommand{}, next)

			assert.Equal(t, tt.err, err)
			require.Len(t, logger.entries, 1)
			entry := logger.entries[0]
			assert.Equal(t, tt.wantLevel, entry.level)
			assert.Equal(t, tt.wantMessage, entry.message)
			assert.Equal(t, "sampleCommand", entry.metadata["request"])
			assert.Equal(t, tt.wantKind, entry.metadata["kind"])
		})
	}
}

func TestLoggerFromContext_FallsBackToNoOp(t *testing.T) {
	logger := LoggerFromContext(context.Background())

	require.NotNil(t, logger)
	logger.Log("INFO", "dropped", nil)
}
