package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/flexwork/internal/pkg/models"
	"github.com/spf13/viper"
)

// InitConfig loads configuration from the environment. In local mode the
// given .env file is loaded first.
func InitConfig(configPath string) *models.Config {
	local := os.Getenv("APP_ENV")
	if local == "" || local == "local" {
		// Load config from file
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	return loadConfig(v)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_NAME", "flexwork")
	v.SetDefault("APP_ENV", "local")
	v.SetDefault("APP_DEBUG", true)
	v.SetDefault("APP_BASE_URL", "http://localhost:3000")

	v.SetDefault("SERVER_PORT", 8080)
	v.SetDefault("SERVER_READ_TIMEOUT", 15)
	v.SetDefault("SERVER_WRITE_TIMEOUT", 15)
	v.SetDefault("SERVER_SHUTDOWN_TIMEOUT", 30)

	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 20)
	v.SetDefault("DB_IDLE_CONNS", 5)
	v.SetDefault("DB_LOCK_TIMEOUT", "5s")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_POOL_SIZE", 10)

	v.SetDefault("NATS_URL", "nats://localhost:4222")
	v.SetDefault("NATS_MAX_DELIVER", 5)
	v.SetDefault("NATS_ACK_WAIT", "30s")
	v.SetDefault("NATS_WORKER_CONCURRENCY", 4)

	v.SetDefault("JWT_EXPIRATION", 60*24)
	v.SetDefault("JWT_ISSUER", "flexwork")

	v.SetDefault("OTP_ISSUER", "Flexwork")
	v.SetDefault("OTP_MAX_ATTEMPTS", 5)
	v.SetDefault("OTP_RATE_LIMIT_WINDOW", "10m")
	v.SetDefault("OTP_DRIFT", "10m")
	v.SetDefault("OTP_PERIOD", "30s")
	v.SetDefault("OTP_RESEND_COOLDOWN", "60s")
	v.SetDefault("OTP_TEST_MODE", false)

	v.SetDefault("MAIL_FROM", "Flexwork <support@example.com>")
	v.SetDefault("MAIL_RATE_PER_SECOND", 2.0)
	v.SetDefault("MAIL_MAX_SEND_RETRIES", 3)

	v.SetDefault("RATE_LIMIT_AUTH_PER_MINUTE", 30)

	v.SetDefault("NEW_RELIC_ENABLED", false)

	v.SetDefault("LOG_LEVEL", "info")
}

func loadConfig(v *viper.Viper) *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = v.GetString("APP_NAME")
	configs.App.Environment = v.GetString("APP_ENV")
	configs.App.Debug = v.GetBool("APP_DEBUG")
	configs.App.Version = v.GetString("APP_VERSION")
	configs.App.BaseURL = v.GetString("APP_BASE_URL")

	// Server config
	configs.Server.Host = v.GetString("SERVER_HOST")
	configs.Server.Port = v.GetInt("SERVER_PORT")
	configs.Server.ReadTimeout = v.GetInt("SERVER_READ_TIMEOUT")
	configs.Server.WriteTimeout = v.GetInt("SERVER_WRITE_TIMEOUT")
	configs.Server.ShutdownTimeout = v.GetInt("SERVER_SHUTDOWN_TIMEOUT")

	// Database config
	configs.Database.Driver = v.GetString("DB_DRIVER")
	configs.Database.Host = v.GetString("DB_HOST")
	configs.Database.Port = v.GetInt("DB_PORT")
	configs.Database.Username = v.GetString("DB_USERNAME")
	configs.Database.Password = v.GetString("DB_PASSWORD")
	configs.Database.Database = v.GetString("DB_DATABASE")
	configs.Database.SSLMode = v.GetString("DB_SSL_MODE")
	configs.Database.MaxConns = v.GetInt("DB_MAX_CONNS")
	configs.Database.IdleConns = v.GetInt("DB_IDLE_CONNS")
	configs.Database.LockTimeout = durationOr(v, "DB_LOCK_TIMEOUT", 5*time.Second)

	// Redis config
	configs.Redis.Host = v.GetString("REDIS_HOST")
	configs.Redis.Port = v.GetInt("REDIS_PORT")
	configs.Redis.Password = v.GetString("REDIS_PASSWORD")
	configs.Redis.DB = v.GetInt("REDIS_DB")
	configs.Redis.PoolSize = v.GetInt("REDIS_POOL_SIZE")

	// NATS config
	configs.NATS.URL = v.GetString("NATS_URL")
	configs.NATS.MaxDeliver = v.GetInt("NATS_MAX_DELIVER")
	configs.NATS.AckWait = durationOr(v, "NATS_ACK_WAIT", 30*time.Second)
	configs.NATS.WorkerConcurrency = v.GetInt("NATS_WORKER_CONCURRENCY")

	// JWT config
	configs.JWT.Secret = v.GetString("JWT_SECRET")
	configs.JWT.Expiration = v.GetInt("JWT_EXPIRATION")
	configs.JWT.Issuer = v.GetString("JWT_ISSUER")

	// OTP config
	configs.OTP.Issuer = v.GetString("OTP_ISSUER")
	configs.OTP.MaxAttempts = v.GetInt("OTP_MAX_ATTEMPTS")
	configs.OTP.RateLimitWindow = durationOr(v, "OTP_RATE_LIMIT_WINDOW", 10*time.Minute)
	configs.OTP.Drift = durationOr(v, "OTP_DRIFT", 10*time.Minute)
	configs.OTP.Period = durationOr(v, "OTP_PERIOD", 30*time.Second)
	configs.OTP.ResendCooldown = durationOr(v, "OTP_RESEND_COOLDOWN", time.Minute)
	configs.OTP.TestMode = v.GetBool("OTP_TEST_MODE")

	// Mail config
	configs.Mail.APIKey = v.GetString("RESEND_API_KEY")
	configs.Mail.From = v.GetString("MAIL_FROM")
	configs.Mail.RatePerSecond = v.GetFloat64("MAIL_RATE_PER_SECOND")
	configs.Mail.MaxSendRetries = v.GetInt("MAIL_MAX_SEND_RETRIES")

	// Rate limit config
	configs.RateLimit.AuthPerMinute = v.GetInt("RATE_LIMIT_AUTH_PER_MINUTE")

	// NewRelic config
	configs.NewRelic.LicenseKey = v.GetString("NEW_RELIC_LICENSE_KEY")
	configs.NewRelic.AppName = v.GetString("NEW_RELIC_APP_NAME")
	configs.NewRelic.Enabled = v.GetBool("NEW_RELIC_ENABLED")
	configs.NewRelic.ForwardLogs = v.GetBool("NEW_RELIC_FORWARD_LOGS")

	// Logger config
	configs.Logger.Level = v.GetString("LOG_LEVEL")
	configs.Logger.FilePath = v.GetString("LOG_FILE_PATH")

	return configs
}

// durationOr parses a duration setting, falling back when the value is malformed
func durationOr(v *viper.Viper, key string, fallback time.Duration) time.Duration {
	d := v.GetDuration(key)
	if d <= 0 {
		log.Printf("Warning: Invalid duration value for %s, using default: %s", key, fallback)
		return fallback
	}
	return d
}
