package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func bufferLogger() (*logger.ZapLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(&buf),
		zapcore.DebugLevel,
	)
	return &logger.ZapLogger{Logger: zap.New(core)}, &buf
}

func TestPanicRecoveryWithZapMiddleware(t *testing.T) {
	testCases := []struct {
		name       string
		panicValue interface{}
		inLogs     []string
	}{
		{name: "string panic", panicValue: "test panic message", inLogs: []string{"test panic message", "stack_trace", "Panic recovered"}},
		{name: "error panic", panicValue: errors.New("db exploded"), inLogs: []string{"db exploded", "panic_type"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Arrange
			zl, buf := bufferLogger()
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/workspace_members", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			c.Set("user_id", "u-1")

			h := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
				panic(tc.panicValue)
			})

			// Act
			err := h(c)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, http.StatusInternalServerError, rec.Code)
			for _, s := range tc.inLogs {
				assert.Contains(t, buf.String(), s)
			}
			assert.Contains(t, buf.String(), "u-1")
		})
	}
}

func TestPanicRecoveryWithZapMiddleware_PassThrough(t *testing.T) {
	zl, buf := bufferLogger()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	h := PanicRecoveryWithZapMiddleware(zl)(func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, buf.String())
}

func TestPanicRecoveryWithZapMiddleware_RequiresLogger(t *testing.T) {
	assert.Panics(t, func() { PanicRecoveryWithZapMiddleware(nil) })
}
