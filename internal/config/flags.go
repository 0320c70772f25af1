package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/questkeeper/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
//	-d string   data directory
//	-b string   storage backend
//	-l string   log level
//	-s string   credential scheme
//
// args are filtered with flagx.FilterArgs first so -c/-config and unknown
// flags do not abort parsing.
func parseFlags(cfg *Config, args []string) error {
	filtered := flagx.FilterArgs(args, []string{"-d", "-b", "-l", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.Backend, "b", cfg.Backend, "storage backend (sqlite|bolt)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")
	fs.StringVar(&cfg.CredentialScheme, "s", cfg.CredentialScheme, "credential scheme (fingerprint|argon2id)")

	return fs.Parse(filtered)
}
