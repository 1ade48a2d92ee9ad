package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"taskbridge/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_JSONInProd(t *testing.T) {
	var buf bytes.Buffer
	cfg := &config.Config{LoggerMode: config.LoggerMode{Prod: true, Level: "info"}}

	l, err := newLogger(cfg, &buf)
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("proposal accepted", "proposal_id", "p1")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "proposal accepted", rec["msg"])
	assert.Equal(t, "p1", rec["proposal_id"])
}

func TestNewLogger_UnknownLevel(t *testing.T) {
	_, err := NewLogger(&config.Config{LoggerMode: config.LoggerMode{Level: "loud"}})
	assert.Error(t, err)
}

func TestLogger_ZeroValueIsUsable(t *testing.T) {
	var l Logger
	assert.NotPanics(t, func() {
		l.Errorf("failed: %v", "x")
		l.With("k", "v").Warn("warned")
	})
}
