package constants

// Redis key formats
const (
	// Auth
	KeyOTPCooldown = "auth:otp:cooldown:%s" // Format: auth:otp:cooldown:{user_id}

	// Workspace
	KeyInvitationSent     = "notify:invitation:%s:%d"      // Format: notify:invitation:{batch_id}:{index}
	KeyInvitationInFlight = "notify:invitation:lock:%s:%d" // Format: notify:invitation:lock:{batch_id}:{index}

	// Rate Limiting
	KeyRateLimit = "rate:limit:%s:%s:%s" // Format: rate:limit:{resource}:{route}:{client}
)
