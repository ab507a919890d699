package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS             HTTP bind address
//	DATABASE_DSN        PostgreSQL DSN
//	JWT_SECRET          access token HMAC secret
//	JWT_REFRESH_SECRET  refresh token HMAC secret
//	ACCESS_TOKEN_TTL    access token validity (Go duration, e.g. "15m")
//	REFRESH_TOKEN_TTL   refresh token validity (Go duration, e.g. "168h")
//	BCRYPT_COST         bcrypt work factor
//	DATABASE_TIMEOUT    per-operation store timeout (Go duration)
//	ENVIRONMENT         development or production
//
// Unset variables leave the current value untouched. Values that fail to
// parse cause a panic so misconfiguration is caught at startup.
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddrHTTP = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.AccessSecretKey = v
	}
	if v, ok := os.LookupEnv("JWT_REFRESH_SECRET"); ok {
		config.RefreshSecretKey = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.AccessTokenValidityDuration = d
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.RefreshTokenValidityDuration = d
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(err)
		}
		config.BcryptCost = n
	}
	if v, ok := os.LookupEnv("DATABASE_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.DatabaseTimeout = d
	}
	if v, ok := os.LookupEnv("ENVIRONMENT"); ok {
		config.Environment = v
	}
}
