package main

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config holds the defaults for a rollin session. Command line flags override
// it.
type Config struct {
	// Format is the fmt verb used to print results.
	Format string `yaml:"format"`
	// Seed seeds dice rolls. Zero means unseeded.
	Seed int64 `yaml:"seed"`
	// Echo prints parse trees before results.
	Echo bool `yaml:"echo"`
	// LogLevel is a zerolog level name.
	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Format:   "%g",
		LogLevel: "info",
	}
}

// loadConfig reads a YAML config file. An empty name or an empty file gives
// the defaults. Fields the file leaves out keep their defaults.
func loadConfig(name string) (Config, error) {
	config := defaultConfig()
	if name == "" {
		return config, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return config, fmt.Errorf("couldn't read config: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return config, nil
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, fmt.Errorf("couldn't parse config %s: %w", name, err)
	}
	if config.Format == "" {
		config.Format = "%g"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	return config, nil
}
