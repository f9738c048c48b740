package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/dmitrijs2005/gophsecrets/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// Environment variables read by parseEnv.
const (
	envAddress      = "ADDRESS"
	envDatabaseDSN  = "DATABASE_DSN"
	envJWTSecret    = "JWT_SECRET"
	envTokenTTL     = "TOKEN_TTL"
	envCookieSecure = "COOKIE_SECURE"
	envGinMode      = "GIN_MODE"
	envLogLevel     = "LOG_LEVEL"
)

// parseEnv loads a dotenv file into the process environment and then copies
// the known variables into config. The file is the one given with -env, or
// ".env" in the working directory if it exists. Variables already present in
// the environment are not overridden by the file.
func parseEnv(config *Config) error {
	if err := loadEnvFile(flagx.EnvFileFlags()); err != nil {
		return err
	}

	setString(&config.EndpointAddrHTTP, os.Getenv(envAddress))
	setString(&config.DatabaseDSN, os.Getenv(envDatabaseDSN))
	setString(&config.SecretKey, os.Getenv(envJWTSecret))
	setString(&config.GinMode, os.Getenv(envGinMode))
	setString(&config.LogLevel, os.Getenv(envLogLevel))

	if v := os.Getenv(envTokenTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envTokenTTL, err)
		}
		config.TokenValidityDuration = d
	}

	if v := os.Getenv(envCookieSecure); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", envCookieSecure, err)
		}
		config.CookieSecure = b
	}

	return nil
}

func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("load env file %s: %w", path, err)
		}
		return nil
	}

	err := godotenv.Load(defaultEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load env file %s: %w", defaultEnvFile, err)
	}
	return nil
}
