// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags. Later sources take precedence over earlier ones.
package config

import "time"

// Config holds runtime settings for the Dream Diary server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: PostgreSQL DSN (pgx). There is no usable default; a missing
//     DSN is a fatal startup error, checked by the composition root.
//   - SecretKey: HMAC secret for signing access tokens (HS256). Do not use
//     test defaults in prod.
//   - AccessTokenValidityDuration / SessionTokenValidityDuration: token lifetimes.
//   - RequireAuth: when true, mutating endpoints demand a valid bearer token.
//     Off by default to match the original's UI-only gating.
//   - CORSOrigin: allowed origin for the admin SPA.
type Config struct {
	EndpointAddr                 string
	DatabaseDSN                  string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	SessionTokenValidityDuration time.Duration
	RequireAuth                  bool
	CORSOrigin                   string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 15 * time.Minute
	c.SessionTokenValidityDuration = 24 * time.Hour
	c.RequireAuth = false
	c.CORSOrigin = "http://localhost:5173"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
