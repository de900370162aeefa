package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	req := require.New(t)
	req.Equal(slog.LevelDebug, LevelFromString("DEBUG"))
	req.Equal(slog.LevelWarn, LevelFromString(" warning "))
	req.Equal(slog.LevelError, LevelFromString("error"))
	req.Equal(slog.LevelInfo, LevelFromString(""))
	req.Equal(slog.LevelInfo, LevelFromString("verbose"))
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	req := require.New(t)
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("hidden")
	log.Warn("shown", "component", "test")

	req.NotContains(buf.String(), "hidden")
	req.Contains(buf.String(), "msg=shown")
	req.Contains(buf.String(), "component=test")
}
