package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration from environment variables.
//
// Recognized variables:
//
//	ADDRESS                  HTTP bind address (e.g. ":8080")
//	DATABASE_DSN             PostgreSQL DSN — the one variable deployments must set
//	SECRET_KEY               HMAC secret for access tokens
//	ACCESS_TOKEN_VALIDITY    duration, e.g. "15m"
//	SESSION_TOKEN_VALIDITY   duration, e.g. "24h"
//	REQUIRE_AUTH             "true"/"1" to enforce bearer auth on mutations
//	CORS_ORIGIN              allowed origin for the admin SPA
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.AccessTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("SESSION_TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.SessionTokenValidityDuration = d
		}
	}
	if v, ok := os.LookupEnv("REQUIRE_AUTH"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.RequireAuth = b
		}
	}
	if v, ok := os.LookupEnv("CORS_ORIGIN"); ok {
		config.CORSOrigin = v
	}
}
