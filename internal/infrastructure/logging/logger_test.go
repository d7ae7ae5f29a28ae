package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/supplychain-go/internal/infrastructure/config"
)

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Level: "loud", Format: "text", Output: "stderr"})
	require.Error(t, err)
}

func TestNew_AppliesLevelAndFormat(t *testing.T) {
	logger, closer, err := New(config.LoggingConfig{Level: "debug", Format: "json", Output: "stdout"})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}

func TestAdapter_WritesLevelMessageAndFields(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.DebugLevel)
	adapter := NewAdapter(logger).With(map[string]interface{}{"component": "test"})

	// Act
	adapter.Log("WARNING", "Trade rejected", map[string]interface{}{"good": "Chair"})

	// Assert
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warning", entry["level"])
	assert.Equal(t, "Trade rejected", entry["msg"])
	assert.Equal(t, "Chair", entry["good"])
	assert.Equal(t, "test", entry["component"])
}

func TestAdapter_DropsEntriesBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.InfoLevel)

	NewAdapter(logger).Log("DEBUG", "noise", nil)

	assert.Empty(t, buf.String())
}
