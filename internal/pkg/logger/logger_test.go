package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_WritesServiceToFile(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	// Act
	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Service: "flexwork-test"}, nil)
	require.NoError(t, err)
	l.Info("hello", String("email", "a@example.com"))
	require.NoError(t, l.Close())

	// Assert
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(raw))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, "hello", entry["message"])
	assert.Equal(t, "flexwork-test", entry["service"])
	assert.Equal(t, "a@example.com", entry["email"])
	assert.Equal(t, "info", entry["level"])
}

func TestNewZapLogger_InvalidLevelDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewZapLogger(ZapConfig{Level: "chatty", FilePath: path}, nil)
	require.NoError(t, err)
	l.Debug("dropped")
	l.Warn("kept")
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "dropped")
	assert.Contains(t, string(raw), "kept")
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "http.log")
	l, err := NewZapLogger(ZapConfig{Level: "info", FilePath: path}, nil)
	require.NoError(t, err)

	l.LogHTTPRequest(nil, "GET", "/health", "127.0.0.1", "anonymous", "r1", 200, time.Millisecond, nil)
	l.LogHTTPRequest(nil, "POST", "/auth/otp/verify", "127.0.0.1", "anonymous", "r2", 429, time.Millisecond, nil)
	l.LogHTTPRequest(nil, "POST", "/workspace_members", "127.0.0.1", "u1", "r3", 500, time.Millisecond, errors.New("boom"))
	require.NoError(t, l.Close())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], `"level":"info"`)
	assert.Contains(t, lines[1], `"level":"warn"`)
	assert.Contains(t, lines[2], `"level":"error"`)
	assert.Contains(t, lines[2], "boom")
}

func TestGlobalLogger_DefaultAndOverride(t *testing.T) {
	assert.NotNil(t, GetGlobalLogger())

	nop := NewNop()
	SetGlobalLogger(nop)
	t.Cleanup(func() { SetGlobalLogger(nil) })

	assert.Same(t, nop, GetGlobalLogger())
	assert.NotPanics(t, func() {
		Info("info", Int("n", 1))
		Warn("warn", Bool("b", true))
		Error("error", Err(errors.New("x")))
	})
}
