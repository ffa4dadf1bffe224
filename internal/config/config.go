// Package config provides configuration loading for the FBX to glTF converter.
package config

import (
	"github.com/GabrielNunesIT/fbx-gltf-converter/internal/domain"
	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// EnvPrefix prefixes environment variables read by Load. Underscores after
// the prefix become key separators, so keys stay single words.
const EnvPrefix = "FBX_GLTF_"

// Config holds the application configuration.
type Config struct {
	// OutputExtension is appended to the input basename when --out is absent.
	// Set with FBX_GLTF_EXT.
	OutputExtension string `koanf:"ext"`
}

// Defaults returns the configuration used when nothing overrides it.
func Defaults() Config {
	return Config{
		OutputExtension: domain.DefaultOutputExtension,
	}
}

// Load returns the application configuration using go-libs config-loader.
func Load() (*Config, error) {
	loader := configloader.NewConfigLoader(
		configloader.WithDefaults(Defaults()),
		configloader.WithEnv[Config](EnvPrefix),
	)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
