package otp

import (
	"errors"
	"strings"
	"time"

	"github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const defaultPeriod = 30 * time.Second

// Generator issues and checks time-based one-time codes
type Generator struct {
	Issuer    string
	Period    time.Duration
	Drift     time.Duration
	Digits    otp.Digits
	Algorithm otp.Algorithm

	// AllowBypass makes BypassCode verify for any secret. Only honoured in
	// binaries built with the otpbypass tag.
	AllowBypass bool
}

// NewGenerator returns a six digit SHA1 generator that accepts codes within drift of now
func NewGenerator(issuer string, period, drift time.Duration) *Generator {
	return &Generator{
		Issuer:    issuer,
		Period:    period,
		Drift:     drift,
		Digits:    otp.DigitsSix,
		Algorithm: otp.AlgorithmSHA1,
	}
}

// GenerateSecret creates a fresh base32 secret for account
func (g *Generator) GenerateSecret(account string) (string, error) {
	if strings.TrimSpace(account) == "" {
		return "", errors.New("otp: account name is required")
	}
	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      g.issuer(),
		AccountName: account,
		Period:      g.periodSeconds(),
		Digits:      g.digits(),
		Algorithm:   g.algorithm(),
	})
	if err != nil {
		return "", err
	}
	return key.Secret(), nil
}

// Code returns the code for secret at t
func (g *Generator) Code(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, g.opts())
}

// Validate reports whether code matches secret at any step within the drift window of now
func (g *Generator) Validate(secret, code string, now time.Time) bool {
	if g.AllowBypass && bypassCompiled && code == BypassCode {
		return true
	}
	if secret == "" || code == "" {
		return false
	}
	ok, err := totp.ValidateCustom(code, secret, now, g.opts())
	return err == nil && ok
}

// Skew is the number of periods accepted on each side of now
func (g *Generator) Skew() uint {
	p := g.period()
	if g.Drift <= 0 {
		return 1
	}
	return uint(g.Drift / p)
}

func (g *Generator) opts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    g.periodSeconds(),
		Skew:      g.Skew(),
		Digits:    g.digits(),
		Algorithm: g.algorithm(),
	}
}

func (g *Generator) period() time.Duration {
	if g.Period < time.Second {
		return defaultPeriod
	}
	return g.Period
}

func (g *Generator) periodSeconds() uint {
	return uint(g.period() / time.Second)
}

func (g *Generator) digits() otp.Digits {
	if g.Digits == 0 {
		return otp.DigitsSix
	}
	return g.Digits
}

func (g *Generator) algorithm() otp.Algorithm {
	if g.Algorithm == 0 {
		return otp.AlgorithmSHA1
	}
	return g.Algorithm
}

func (g *Generator) issuer() string {
	if strings.TrimSpace(g.Issuer) == "" {
		return "Flexwork"
	}
	return g.Issuer
}
