// Package config handles configuration for the server component,
// including defaults, JSON overlay, dotenv/environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/gophsecrets/internal/common"
	"github.com/gin-gonic/gin"
)

// Config holds runtime settings for the server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the web endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty selects the in-memory store.
//   - SecretKey: HMAC secret for signing session tokens (HS256). Required.
//   - TokenValidityDuration: session token and cookie lifetime.
//   - CookieSecure: sets the Secure attribute on the session cookie.
//   - GinMode: gin engine mode ("debug", "release", "test").
//   - LogLevel: minimum slog level.
//   - ShutdownTimeout: grace period for in-flight requests on stop.
type Config struct {
	EndpointAddrHTTP      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	CookieSecure          bool
	GinMode               string
	LogLevel              string
	ShutdownTimeout       time.Duration
}

// ErrInvalidTokenValidity is returned by Validate for a non-positive token lifetime.
var ErrInvalidTokenValidity = errors.New("token validity duration must be positive")

// ErrInvalidGinMode is returned by Validate for a mode gin.SetMode would reject.
var ErrInvalidGinMode = errors.New("gin mode must be one of debug, release, test")

// LoadDefaults populates Config with development defaults. There is no default
// signing key on purpose: it has to come from one of the configuration layers.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8000"
	c.DatabaseDSN = ""
	c.SecretKey = ""
	c.TokenValidityDuration = common.DefaultTokenValidity
	c.CookieSecure = false
	c.GinMode = "release"
	c.LogLevel = "info"
	c.ShutdownTimeout = 5 * time.Second
}

// Validate reports configuration that must stop the process at startup.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return common.ErrMissingSigningKey
	}
	if c.TokenValidityDuration <= 0 {
		return ErrInvalidTokenValidity
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidGinMode, c.GinMode)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, a dotenv file and the environment, and finally
// from command-line flags. The result is validated.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
