package config

import (
	"flag"
	"os"
	"time"

	"github.com/noflow/engine/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-r string   database driver ("pgx" or "sqlite")
//	-d string   database DSN
//	-s string   session signing secret
//	-n string   session cookie name
//	-p int      persistent ("remember me") session validity, hours
//	-o string   CORS allowed origins, comma-separated
//	-m          release mode
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the -c/-config flags handled
// by the JSON layer.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-r", "-d", "-s", "-n", "-p", "-o", "-m"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDriver, "r", config.DatabaseDriver, "database driver (pgx or sqlite)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session signing secret")
	fs.StringVar(&config.SessionCookieName, "n", config.SessionCookieName, "session cookie name")

	persistentValidityHours := fs.Int("p", int(config.PersistentSessionValidity.Hours()), "persistent session validity (in hours)")

	fs.StringVar(&config.CORSAllowedOrigins, "o", config.CORSAllowedOrigins, "CORS allowed origins (comma-separated)")
	fs.BoolVar(&config.ReleaseMode, "m", config.ReleaseMode, "release mode")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.PersistentSessionValidity = time.Duration(*persistentValidityHours) * time.Hour
}
