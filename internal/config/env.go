package config

import (
	"os"
	"strconv"
)

// parseEnv overlays configuration from environment variables. This is the
// primary configuration channel on Lambda, where flags are unavailable.
func parseEnv(config *Config) {
	if v := os.Getenv("AWS_REGION"); v != "" {
		config.AWSRegion = v
	}
	if v := os.Getenv("USERS_TABLE_NAME"); v != "" {
		config.UsersTable = v
	}
	if v := os.Getenv("PETS_TABLE_NAME"); v != "" {
		config.PetsTable = v
	}
	if v := os.Getenv("IDENTITY_POOL_ID"); v != "" {
		config.IdentityPoolID = v
	}
	if v := os.Getenv("DEVELOPER_PROVIDER_NAME"); v != "" {
		config.DeveloperProviderName = v
	}
	if v := os.Getenv("SCAN_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			config.ScanLimit = n
		}
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		config.LogLevel = v
	}
}
