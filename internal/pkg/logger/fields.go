package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field lets callers build log fields without importing zap directly
type Field = zap.Field

func String(key, val string) Field {
	return zap.String(key, val)
}

func Strings(key string, val []string) Field {
	return zap.Strings(key, val)
}

func Err(err error) Field {
	return zap.Error(err)
}

func Int(key string, val int) Field {
	return zap.Int(key, val)
}

func Int64(key string, val int64) Field {
	return zap.Int64(key, val)
}

func Bool(key string, val bool) Field {
	return zap.Bool(key, val)
}

func Any(key string, val interface{}) Field {
	return zap.Any(key, val)
}

func Duration(key string, val time.Duration) Field {
	return zap.Duration(key, val)
}

// UserID tags an entry with the acting or target user
func UserID(id string) Field {
	return zap.String("user_id", id)
}

// CompanyID tags an entry with the workspace it concerns
func CompanyID(id string) Field {
	return zap.String("company_id", id)
}
