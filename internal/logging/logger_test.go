package logging

import (
	"bytes"
	"errors"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := New()
	logger.SetLevel(level)
	logger.SetOutput(log.New(&buf, "", 0))
	return logger, &buf
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		shouldLog bool
	}{
		{"debug allowed at debug", LevelDebug, LevelDebug, true},
		{"info allowed at debug", LevelDebug, LevelInfo, true},
		{"debug blocked at info", LevelInfo, LevelDebug, false},
		{"info blocked at warn", LevelWarn, LevelInfo, false},
		{"warn allowed at warn", LevelWarn, LevelWarn, true},
		{"error allowed at warn", LevelWarn, LevelError, true},
		{"warn blocked at error", LevelError, LevelWarn, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newTestLogger(tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("test message")
			case LevelInfo:
				logger.Info("test message")
			case LevelWarn:
				logger.Warn("test message")
			case LevelError:
				logger.Error("test message")
			}

			if tt.shouldLog {
				assert.Contains(t, buf.String(), tt.logLevel.String()+": test message")
			} else {
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestLoggerFields(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	child := logger.With("stage", "window").WithFields(map[string]interface{}{"width": 960})
	child.Error("create failed", "error", errors.New("no display"))

	assert.Equal(t, "ERROR: create failed | error=\"no display\" stage=window width=960\n", buf.String())
}

func TestLoggerChildSharesLevel(t *testing.T) {
	logger, buf := newTestLogger(LevelWarn)
	child := logger.With("component", "loop")

	child.Info("hidden")
	assert.Empty(t, buf.String())

	logger.SetLevel(LevelInfo)
	child.Info("shown")
	assert.Contains(t, buf.String(), "INFO: shown | component=loop")
}

func TestLoggerParentUnmodified(t *testing.T) {
	logger, buf := newTestLogger(LevelDebug)

	_ = logger.With("session", "abc")
	logger.Info("plain")

	assert.Equal(t, "INFO: plain\n", buf.String())
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		input    interface{}
		expected string
	}{
		{"simple string", "hello", "hello"},
		{"string with spaces", "hello world", `"hello world"`},
		{"empty string", "", `""`},
		{"integer", 42, "42"},
		{"float", 1.5, "1.5"},
		{"error", errors.New("oops"), `"oops"`},
		{"stringer", LevelInfo, "INFO"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatValue(tt.input))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"INFO", LevelInfo},
		{" warn ", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("loud")
	assert.EqualError(t, err, `unknown log level "loud"`)
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	Default().SetOutput(log.New(&buf, "", 0))
	SetLevel(LevelWarn)
	t.Cleanup(func() {
		Default().SetOutput(log.New(os.Stderr, "", log.LstdFlags))
		SetLevel(LevelWarn)
	})

	Default().Debug("filtered")
	assert.Empty(t, buf.String())

	Default().With("component", "test").Warn("kept")
	assert.Contains(t, buf.String(), "WARN: kept | component=test")

	SetLevel(LevelDebug)
	Default().Debug("now shown")
	assert.Contains(t, buf.String(), "DEBUG: now shown")
}
