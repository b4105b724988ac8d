//go:build otpbypass

package usecase

import (
	"context"
	"testing"

	"github.com/piresc/flexwork/internal/pkg/otp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_BypassCodeGating(t *testing.T) {
	testCases := []struct {
		name     string
		env      string
		testMode bool
		want     bool
	}{
		{name: "test mode outside production", env: "test", testMode: true, want: true},
		{name: "test mode off", env: "test", testMode: false, want: false},
		{name: "production ignores test mode", env: "production", testMode: true, want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.App.Environment = tc.env
			cfg.OTP.TestMode = tc.testMode
			env := newTestEnv(t, cfg)
			if env.validCode(t) == otp.BypassCode {
				t.Skip("current code happens to equal the sentinel")
			}

			ok, err := env.uc.Verify(context.Background(), env.user.ID, otp.BypassCode)

			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}
}
