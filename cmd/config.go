package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"

	"github.com/Deibi93/muenztracker/spot"
	"gopkg.in/yaml.v3"
)

// defaultConfigFile is looked up when -config is not given. It is fine
// for it not to exist.
const defaultConfigFile = "muenztracker.yaml"

// Config is the optional YAML configuration of the application.
type Config struct {
	// Model is the Gemini model asked for spot prices.
	Model string `yaml:"model"`
	// Inventory is the path of the inventory file (JSONL).
	Inventory string `yaml:"inventory"`
	// Timeframe is the default timeframe for historical queries.
	Timeframe string `yaml:"timeframe"`
	// Schedule is the cron expression driving `watch` refreshes.
	Schedule string `yaml:"schedule"`
	// Reference overrides the fallback prices used when no price can be
	// fetched. Zero keeps the built-in references.
	Reference struct {
		Gold   float64 `yaml:"gold"`
		Silver float64 `yaml:"silver"`
	} `yaml:"reference"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Model:     spot.DefaultModel,
		Inventory: "bestand.jsonl",
		Timeframe: spot.Intraday.String(),
		Schedule:  "@hourly",
	}
}

// LoadConfig reads the configuration from path on top of the defaults.
// An empty path means the default location, where a missing file is not
// an error; an explicitly given file must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("cannot read config file %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file %q: %w", path, err)
	}
	if _, err := spot.ParseTimeframe(cfg.Timeframe); err != nil {
		return cfg, fmt.Errorf("config file %q: %w", path, err)
	}
	return cfg, nil
}

var loadConfigOnce = sync.OnceValue(func() Config {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	return cfg
})

// appConfig returns the app configuration, loaded once per run.
func appConfig() Config {
	return loadConfigOnce()
}
