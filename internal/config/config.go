package config

import (
	"fmt"
	"time"
)

const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"

	SchemeFingerprint = "fingerprint"
	SchemeArgon2ID    = "argon2id"
)

// Config holds runtime settings for the QuestKeeper CLI.
//
// DocumentKey names the single key/value slot the whole application document
// lives under. BoltOpenTimeout bounds how long the bolt backend waits for
// the file lock held by another process.
type Config struct {
	DataDir          string        `env:"DATA_DIR"`
	Backend          string        `env:"BACKEND"`
	DocumentKey      string        `env:"DOCUMENT_KEY"`
	LogLevel         string        `env:"LOG_LEVEL"`
	CredentialScheme string        `env:"CREDENTIAL_SCHEME"`
	BoltOpenTimeout  time.Duration `env:"BOLT_OPEN_TIMEOUT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "./questkeeper-data"
	c.Backend = BackendSQLite
	c.DocumentKey = "qtrpg_v1"
	c.LogLevel = "warn"
	c.CredentialScheme = SchemeFingerprint
	c.BoltOpenTimeout = time.Second
}

// Validate rejects values no component can serve.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendSQLite, BackendBolt:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.CredentialScheme {
	case SchemeFingerprint, SchemeArgon2ID:
	default:
		return fmt.Errorf("unknown credential scheme %q", c.CredentialScheme)
	}
	if c.DocumentKey == "" {
		return fmt.Errorf("document key must not be empty")
	}
	return nil
}

// LoadConfig builds a Config from defaults, then overlays the JSON file,
// the environment and finally args (usually os.Args[1:]).
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, nil); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
