package slogpretty

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/slog"
)

func TestPrettyHandler(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	h := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelDebug},
	}.NewPrettyHandler(&buf)

	log := slog.New(h).With("component", "test")
	log.Info("item created", "item_id", 5)

	out := buf.String()
	assert.Contains(t, out, "INFO:")
	assert.Contains(t, out, "item created")
	assert.Contains(t, out, `"component": "test"`)
	assert.Contains(t, out, `"item_id": 5`)
}

func TestPrettyHandler_Level(t *testing.T) {
	var buf bytes.Buffer
	h := PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: slog.LevelInfo},
	}.NewPrettyHandler(&buf)

	log := slog.New(h)
	log.Debug("hidden")

	assert.Empty(t, buf.String())
}
