// Package config handles configuration for the dispatcher, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

// Config holds the runtime settings for the petgate backend.
//
// Fields:
//   - AWSRegion: region for the DynamoDB and Cognito clients. Empty means
//     the SDK default resolution chain (on Lambda, AWS_REGION is set).
//   - UsersTable / PetsTable: DynamoDB table names.
//   - IdentityPoolID: Cognito identity pool used for developer identities.
//   - DeveloperProviderName: the custom provider name configured on the pool.
//   - ScanLimit: maximum page size for pet listings; requests outside
//     (0, ScanLimit] are clamped to it.
//   - DatabaseDSN: optional PostgreSQL DSN. When set, the SQL backing store
//     is used instead of DynamoDB.
//   - LogLevel: slog level name ("debug", "info", "warn", "error").
type Config struct {
	AWSRegion             string
	UsersTable            string
	PetsTable             string
	IdentityPoolID        string
	DeveloperProviderName string
	ScanLimit             int
	DatabaseDSN           string
	LogLevel              string
}

// LoadDefaults populates Config with development defaults. The identity
// pool id must be overridden for federation to work.
func (c *Config) LoadDefaults() {
	c.AWSRegion = ""
	c.UsersTable = "users"
	c.PetsTable = "pets"
	c.IdentityPoolID = ""
	c.DeveloperProviderName = "login.petgate"
	c.ScanLimit = 50
	c.DatabaseDSN = ""
	c.LogLevel = "info"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
