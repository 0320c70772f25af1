package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/questkeeper/internal/flagx"
	"github.com/dmitrijs2005/questkeeper/internal/timex"
)

// JsonConfig is a DTO used only for unmarshalling. Absent keys leave the
// corresponding Config field untouched.
type JsonConfig struct {
	DataDir          *string         `json:"data_dir"`
	Backend          *string         `json:"backend"`
	DocumentKey      *string         `json:"document_key"`
	LogLevel         *string         `json:"log_level"`
	CredentialScheme *string         `json:"credential_scheme"`
	BoltOpenTimeout  *timex.Duration `json:"bolt_open_timeout"`
}

// parseJson overlays cfg with the file named by -c/-config, if any.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	overlay(&cfg.DataDir, jc.DataDir)
	overlay(&cfg.Backend, jc.Backend)
	overlay(&cfg.DocumentKey, jc.DocumentKey)
	overlay(&cfg.LogLevel, jc.LogLevel)
	overlay(&cfg.CredentialScheme, jc.CredentialScheme)
	if jc.BoltOpenTimeout != nil {
		cfg.BoltOpenTimeout = jc.BoltOpenTimeout.Duration
	}
	return nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
