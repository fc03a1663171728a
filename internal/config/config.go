package config

import (
	"os"
	"time"

	"github.com/parthkumar123/backend/internal/utils"
)

const (
	AppName            = "task-service"
	DefaultAppPort     = "3000"
	DefaultTokenExpiry = 1 * time.Hour
)

// Config holds all process-wide configuration. It is loaded once at
// startup and read-only afterwards; services and repositories receive
// it at construction.
type Config struct {
	AppName     string
	AppPort     string
	Env         string
	DBUrl       string
	JWTSecret   []byte
	TokenExpiry time.Duration
}

// IsProduction controls whether diagnostic detail is included in
// error responses.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// LoadConfig reads configuration from the environment and fails fast
// on anything required but missing.
func LoadConfig() *Config {
	env := os.Getenv("ENV")
	if env == "" {
		utils.Logger.Fatal("ENV env var is missing")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		utils.Logger.Fatal("DATABASE_URL env var is missing")
	}

	jwtSecret := os.Getenv("JWT_SECRETKEY")
	if jwtSecret == "" {
		utils.Logger.Fatal("JWT_SECRETKEY env var is missing")
	}

	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = DefaultAppPort
	}

	tokenExpiry := DefaultTokenExpiry
	if v := os.Getenv("JWT_TOKEN_EXPIRYTIME"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			utils.Logger.Fatalf("Invalid JWT_TOKEN_EXPIRYTIME %q: %v", v, err)
		}
		tokenExpiry = d
	}

	utils.Logger.Infof("Loaded config for %s (env=%s)", AppName, env)

	return &Config{
		AppName:     AppName,
		AppPort:     appPort,
		Env:         env,
		DBUrl:       dbURL,
		JWTSecret:   []byte(jwtSecret),
		TokenExpiry: tokenExpiry,
	}
}
