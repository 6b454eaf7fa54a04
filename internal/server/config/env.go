package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config fields from environment variables using the
// env tags declared on Config. Unset variables leave the current values
// untouched, so defaults and JSON-file values survive the overlay.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
