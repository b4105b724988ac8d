package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}

func TestGenerateRandomHex(t *testing.T) {
	for _, n := range []int{1, 16, 31, 64} {
		s, err := GenerateRandomHex(n)
		require.NoError(t, err)
		assert.Len(t, s, n)
		assert.Regexp(t, "^[0-9a-f]+$", s)
	}

	a, _ := GenerateRandomHex(32)
	b, _ := GenerateRandomHex(32)
	assert.NotEqual(t, a, b)
}

func TestMaskEmail(t *testing.T) {
	testCases := []struct {
		in, out string
	}{
		{"ana.maria@example.com", "an*******@example.com"},
		{"ab@example.com", "ab@example.com"},
		{"not-an-email", "not-an-email"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.out, MaskEmail(tc.in))
	}
}

func TestRequestValidator(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
		OTP   string `validate:"required,numeric,len=6"`
	}
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(payload{Email: "a@example.com", OTP: "123456"}))

	err := v.Validate(payload{Email: "nope", OTP: "12"})
	require.Error(t, err)
	msg := ValidationMessage(err)
	assert.Contains(t, msg, "email failed email")
	assert.Contains(t, msg, "otp failed len=6")

	assert.Error(t, v.Var("x", "email"))
}
