package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries everything the server reads from the environment.
// Load once in main and pass down; nothing else touches os.Getenv.
type Config struct {
	Port        string
	DatabaseURL string
	Env         string // "production" tightens cookie attributes

	JWTSecret  []byte
	SessionTTL time.Duration
	ClockSkew  time.Duration

	CORSOrigins []string

	// Optional: rate limiting is enabled only when RedisURL is set.
	RedisURL string

	// Optional: cover uploads are enabled only when S3Bucket is set.
	S3Endpoint  string
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string

	MaxBodyBytes int64
}

func Load() (Config, error) {
	cfg := Config{
		Port:         getenv("PORT", "3000"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		Env:          getenv("APP_ENV", "development"),
		JWTSecret:    []byte(os.Getenv("JWT_SECRET")),
		SessionTTL:   getDuration("SESSION_TTL", time.Hour),
		ClockSkew:    getDuration("AUTH_CLOCK_SKEW", 60*time.Second),
		RedisURL:     os.Getenv("REDIS_URL"),
		S3Endpoint:   os.Getenv("AWS_ENDPOINT"),
		S3Region:     os.Getenv("AWS_REGION"),
		S3Bucket:     os.Getenv("AWS_BUCKET"),
		S3AccessKey:  os.Getenv("AWS_ACCESS_KEY_ID"),
		S3SecretKey:  os.Getenv("AWS_SECRET_ACCESS_KEY"),
		MaxBodyBytes: getInt64("MAX_BODY_SIZE", 1<<20),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return Config{}, fmt.Errorf("JWT_SECRET not set")
	}

	if raw := os.Getenv("CORS_ORIGINS"); raw != "" {
		cfg.CORSOrigins = splitCSV(raw)
	} else {
		cfg.CORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173"}
	}
	return cfg, nil
}

// Production reports whether cookies should carry Secure + SameSite=None.
func (c Config) Production() bool { return c.Env == "production" }

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func getInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
