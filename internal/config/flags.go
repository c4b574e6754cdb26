package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/petgate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-g string   AWS region
//	-u string   users table name
//	-p string   pets table name
//	-i string   Cognito identity pool id
//	-n string   developer provider name
//	-l int      scan page limit
//	-d string   PostgreSQL DSN (selects the SQL backing store)
//	-v string   log level
//
// Args are filtered with flagx.FilterArgs first so this parser only sees
// the flags it owns.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-g", "-u", "-p", "-i", "-n", "-l", "-d", "-v"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.AWSRegion, "g", config.AWSRegion, "AWS region")
	fs.StringVar(&config.UsersTable, "u", config.UsersTable, "users table name")
	fs.StringVar(&config.PetsTable, "p", config.PetsTable, "pets table name")
	fs.StringVar(&config.IdentityPoolID, "i", config.IdentityPoolID, "Cognito identity pool id")
	fs.StringVar(&config.DeveloperProviderName, "n", config.DeveloperProviderName, "developer provider name")
	fs.IntVar(&config.ScanLimit, "l", config.ScanLimit, "scan page limit")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
