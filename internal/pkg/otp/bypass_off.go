//go:build !otpbypass

package otp

const bypassCompiled = false
