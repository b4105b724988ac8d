//go:build otpbypass

package otp

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBypassCodeAcceptedOnlyWhenAllowed(t *testing.T) {
	g, secret := newTestGenerator(t)
	now := time.Now()

	assert.True(t, BypassAvailable())

	g.AllowBypass = false
	assert.False(t, g.Validate(secret, BypassCode, now))

	g.AllowBypass = true
	assert.True(t, g.Validate(secret, BypassCode, now))
	assert.True(t, g.Validate("", BypassCode, now))
}
