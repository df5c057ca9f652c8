package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultTokenTTL = 90 * 24 * time.Hour

// Config holds all process configuration, loaded once at startup.
type Config struct {
	DatabaseURL string
	JWTSecret   string
	TokenTTL    time.Duration
	Env         string
	Port        string
}

// Load reads configuration from the environment, consulting a local .env
// file first when one exists.
func Load() Config {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		// Kept for parity with existing deployments. Tokens signed with the
		// default are forgeable by anyone who reads this source.
		log.Println("WARNING: JWT_SECRET is not set, using insecure default")
		secret = "secret"
	}

	ttl := defaultTokenTTL
	if v := strings.TrimSpace(os.Getenv("JWT_EXPIRES_IN")); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid JWT_EXPIRES_IN %q: %v", v, err)
		}
		ttl = parsed
	}

	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = "development"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		DatabaseURL: dsn,
		JWTSecret:   secret,
		TokenTTL:    ttl,
		Env:         env,
		Port:        port,
	}
}

// IsProduction reports whether the process runs in production mode.
// Outside production, error responses include stack traces.
func (c Config) IsProduction() bool {
	return c.Env == "production"
}
