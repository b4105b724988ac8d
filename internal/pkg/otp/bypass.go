package otp

// BypassCode is the fixed code accepted by test builds with the bypass enabled
const BypassCode = "000000"

// BypassAvailable reports whether this binary was built with the otpbypass tag
func BypassAvailable() bool {
	return bypassCompiled
}
