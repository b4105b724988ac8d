// Package requestcontext carries correlation ids for one unit of work, an HTTP request or a
// queued job, so log lines from every layer can be joined.
package requestcontext

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderTraceID propagates a caller-supplied trace id
const HeaderTraceID = "X-Trace-ID"

type ctxKey struct{}

// RequestContext identifies one unit of work
type RequestContext struct {
	RequestID   string
	TraceID     string
	UserID      string
	ServiceName string
}

// FromEchoContext builds a RequestContext for an incoming request, keeping ids sent by the caller
func FromEchoContext(c echo.Context, serviceName string) *RequestContext {
	rc := &RequestContext{
		RequestID:   headerOrNew(c, echo.HeaderXRequestID),
		TraceID:     headerOrNew(c, HeaderTraceID),
		ServiceName: serviceName,
	}
	if uid, ok := c.Get("user_id").(string); ok {
		rc.UserID = uid
	}
	return rc
}

// ForJob builds a RequestContext for a queued job. The job id doubles as request id so
// every redelivery of the same job logs under one id.
func ForJob(serviceName, jobID string) *RequestContext {
	return &RequestContext{
		RequestID:   jobID,
		TraceID:     uuid.NewString(),
		ServiceName: serviceName,
	}
}

func headerOrNew(c echo.Context, header string) string {
	if v := c.Request().Header.Get(header); v != "" {
		return v
	}
	return uuid.NewString()
}

// With stores rc on ctx
func With(ctx context.Context, rc *RequestContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, rc)
}

// From returns the RequestContext on ctx, or nil
func From(ctx context.Context) *RequestContext {
	rc, _ := ctx.Value(ctxKey{}).(*RequestContext)
	return rc
}

// WithUserID records the authenticated user without mutating the RequestContext already on ctx
func WithUserID(ctx context.Context, userID string) context.Context {
	next := RequestContext{}
	if rc := From(ctx); rc != nil {
		next = *rc
	}
	next.UserID = userID
	return With(ctx, &next)
}

func GetRequestID(ctx context.Context) string {
	if rc := From(ctx); rc != nil {
		return rc.RequestID
	}
	return ""
}

func GetTraceID(ctx context.Context) string {
	if rc := From(ctx); rc != nil {
		return rc.TraceID
	}
	return ""
}

func GetUserID(ctx context.Context) string {
	if rc := From(ctx); rc != nil {
		return rc.UserID
	}
	return ""
}

func GetServiceName(ctx context.Context) string {
	if rc := From(ctx); rc != nil {
		return rc.ServiceName
	}
	return ""
}
