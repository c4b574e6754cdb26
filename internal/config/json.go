package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/petgate/internal/flagx"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// After unmarshalling, set fields are copied into the runtime Config.
type JsonConfig struct {
	AWSRegion             string `json:"aws_region"`
	UsersTable            string `json:"users_table"`
	PetsTable             string `json:"pets_table"`
	IdentityPoolID        string `json:"identity_pool_id"`
	DeveloperProviderName string `json:"developer_provider_name"`
	ScanLimit             int    `json:"scan_limit"`
	DatabaseDSN           string `json:"database_dsn"`
	LogLevel              string `json:"log_level"`
}

// parseJson loads configuration values from the JSON file given via the
// -c/-config flags. Absent file path means nothing is loaded; an unreadable
// or invalid file panics, since running with a half-applied config is worse
// than not starting.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.AWSRegion != "" {
		config.AWSRegion = c.AWSRegion
	}
	if c.UsersTable != "" {
		config.UsersTable = c.UsersTable
	}
	if c.PetsTable != "" {
		config.PetsTable = c.PetsTable
	}
	if c.IdentityPoolID != "" {
		config.IdentityPoolID = c.IdentityPoolID
	}
	if c.DeveloperProviderName != "" {
		config.DeveloperProviderName = c.DeveloperProviderName
	}
	if c.ScanLimit > 0 {
		config.ScanLimit = c.ScanLimit
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.LogLevel != "" {
		config.LogLevel = c.LogLevel
	}
}
