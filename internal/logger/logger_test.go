package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf, Component: "browser"})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"document": "services.yaml", "rows": 3})
	log.Info("document loaded")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "document loaded", entry["message"])
	require.Equal(t, "services.yaml", entry["document"])
	require.Equal(t, float64(3), entry["rows"])
	require.Equal(t, "browser", entry["component"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.DebugFields("nor this", map[string]any{"row": 1})
	require.Equal(t, "", strings.TrimSpace(buf.String()))
	require.Equal(t, "info", log.Level())
}

func TestLoggerDebugFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.With("gesture", "toggle").DebugFields("row selected", map[string]any{"row": 2})

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "toggle", entry["gesture"])
	require.Equal(t, float64(2), entry["row"])
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"document": "broken.yaml"})
	log.Error(errors.New("boom"), "reload failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "reload failed", entry["message"])
	require.Equal(t, "broken.yaml", entry["document"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("watch paused")

	require.Contains(t, buf.String(), "watch paused")
	require.Contains(t, buf.String(), "WRN")
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLog *Logger
	nilLog.Info("ignored")
	nilLog.Error(errors.New("x"), "ignored")
	require.Nil(t, nilLog.WithFields(map[string]any{"a": 1}))

	Nop().Info("ignored")
	require.Equal(t, "disabled", Nop().Level())
}
