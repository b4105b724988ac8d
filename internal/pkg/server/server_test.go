package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}

func TestGracefulServer_RunStopsOnContextCancel(t *testing.T) {
	// Arrange
	e := echo.New()
	e.HideBanner = true
	e.GET("/ping", func(c echo.Context) error { return c.String(http.StatusOK, "pong") })

	port := freePort(t)
	gs := NewGracefulServer(e, logger.NewNop(), "127.0.0.1", port, time.Second)

	cleaned := make(chan struct{}, 1)
	gs.OnShutdown(func(context.Context) error {
		cleaned <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Act
	go func() { done <- gs.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/ping")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 3*time.Second, 20*time.Millisecond)

	cancel()

	// Assert
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
	select {
	case <-cleaned:
	default:
		t.Fatal("shutdown hook was not called")
	}
}

func TestShutdownManager_RunsAllAndJoinsErrors(t *testing.T) {
	sm := NewShutdownManager(logger.NewNop())
	var calls []int
	sm.Register(func(context.Context) error { calls = append(calls, 1); return errors.New("redis close") })
	sm.Register(func(context.Context) error { calls = append(calls, 2); return nil })

	err := sm.Shutdown(context.Background())

	assert.Equal(t, []int{1, 2}, calls)
	assert.ErrorContains(t, err, "redis close")
}

func TestNewGracefulServer_DefaultTimeout(t *testing.T) {
	gs := NewGracefulServer(echo.New(), logger.NewNop(), "", 8080, 0)
	assert.Equal(t, 30*time.Second, gs.shutdownTimeout)
	assert.Equal(t, ":8080", gs.addr)
}
