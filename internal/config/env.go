package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

const envPrefix = "QUESTKEEPER_"

// parseEnv overlays cfg with QUESTKEEPER_* variables. A nil environment
// means the process environment; tests pass an explicit map.
func parseEnv(cfg *Config, environment map[string]string) error {
	opts := env.Options{Prefix: envPrefix}
	if environment != nil {
		opts.Environment = environment
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}
