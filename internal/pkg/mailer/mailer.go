// Package mailer sends transactional email through Resend.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/flexwork/internal/pkg/circuitbreaker"
	"github.com/piresc/flexwork/internal/pkg/logger"
	"github.com/piresc/flexwork/internal/pkg/models"
	nr "github.com/piresc/flexwork/internal/pkg/newrelic"
	"github.com/piresc/flexwork/internal/pkg/retry"
	"github.com/piresc/flexwork/internal/utils"
	"github.com/resend/resend-go/v2"
	"golang.org/x/time/rate"
)

const resendEndpoint = "https://api.resend.com/emails"

// Message is one rendered email
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Sender delivers a rendered message
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// emailAPI is the part of the Resend client the mailer uses
type emailAPI interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// Mailer is a rate limited, retried and circuit-broken Resend sender
type Mailer struct {
	api     emailAPI
	from    string
	limiter *rate.Limiter
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
	logger  *logger.ZapLogger
}

// New returns a Resend-backed mailer. Without an API key messages are only logged.
func New(cfg models.MailConfig, l *logger.ZapLogger) *Mailer {
	var api emailAPI = logAPI{logger: l}
	if cfg.APIKey != "" {
		api = resend.NewClient(cfg.APIKey).Emails
	}
	return newMailer(api, cfg, l)
}

func newMailer(api emailAPI, cfg models.MailConfig, l *logger.ZapLogger) *Mailer {
	if l == nil {
		l = logger.GetGlobalLogger()
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = cfg.MaxSendRetries

	breakerCfg := circuitbreaker.DefaultConfig("resend")
	breakerCfg.Timeout = 30 * time.Second

	return &Mailer{
		api:     api,
		from:    cfg.From,
		limiter: rate.NewLimiter(limit, 1),
		breaker: circuitbreaker.New(breakerCfg, l),
		retrier: retry.New(retryCfg, l),
		logger:  l,
	}
}

// Send delivers msg, waiting for the provider rate limit and retrying transient failures
func (m *Mailer) Send(ctx context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return errors.New("mailer: recipient is required")
	}

	if err := m.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("mailer: waiting for send slot: %w", err)
	}

	req := &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	err := m.retrier.Execute(ctx, func(ctx context.Context) error {
		err := m.breaker.Execute(ctx, func(ctx context.Context) error {
			return nr.WithExternalSegment(ctx, "resend", "POST", resendEndpoint, func() error {
				_, err := m.api.Send(req)
				return err
			})
		})
		if errors.Is(err, circuitbreaker.ErrCircuitBreakerOpen) || errors.Is(err, circuitbreaker.ErrTooManyRequests) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("mailer: send to %s: %w", utils.MaskEmail(msg.To), err)
	}

	m.logger.Debug("Email sent",
		logger.String("to", utils.MaskEmail(msg.To)),
		logger.String("subject", msg.Subject))
	return nil
}

// logAPI stands in for Resend when no API key is configured
type logAPI struct {
	logger *logger.ZapLogger
}

func (a logAPI) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	l := a.logger
	if l == nil {
		l = logger.GetGlobalLogger()
	}
	l.Info("Email delivery disabled, logging message",
		logger.Strings("to", params.To),
		logger.String("subject", params.Subject),
		logger.String("text", params.Text))
	return &resend.SendEmailResponse{Id: "logged"}, nil
}
