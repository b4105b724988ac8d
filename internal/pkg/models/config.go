package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NATS      NATSConfig
	JWT       JWTConfig
	OTP       OTPConfig
	Mail      MailConfig
	RateLimit RateLimitConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
	BaseURL     string
}

// IsProduction reports whether the app runs with APP_ENV=production
func (a AppConfig) IsProduction() bool {
	return a.Environment == "production"
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver      string
	Host        string
	Port        int
	Username    string
	Password    string
	Database    string
	SSLMode     string
	MaxConns    int
	IdleConns   int
	LockTimeout time.Duration // bounds SELECT ... FOR UPDATE waits
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS and JetStream configuration
type NATSConfig struct {
	URL               string
	MaxDeliver        int
	AckWait           time.Duration
	WorkerConcurrency int
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// OTPConfig contains one-time password settings
type OTPConfig struct {
	Issuer          string
	MaxAttempts     int
	RateLimitWindow time.Duration
	Drift           time.Duration
	Period          time.Duration
	ResendCooldown  time.Duration
	TestMode        bool // sentinel code; only honoured in otpbypass builds outside production
}

// MailConfig contains outbound email settings
type MailConfig struct {
	APIKey         string
	From           string
	RatePerSecond  float64
	MaxSendRetries int
}

// RateLimitConfig contains HTTP rate limiting settings
type RateLimitConfig struct {
	AuthPerMinute int
}

// NewRelicConfig contains New Relic agent settings
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
