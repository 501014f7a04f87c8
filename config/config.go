package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultBaseURL = "https://api.weather.gov"
	defaultTimeout = Duration(10 * time.Second)
)

type Config struct {
	API       API        `yaml:"api"`
	Locations []Location `yaml:"locations"`
}

type API struct {
	BaseURL   string   `yaml:"baseURL"`
	UserAgent string   `yaml:"userAgent"`
	Timeout   Duration `yaml:"timeout"`
}

// Location is one entry of the static station table. The order of
// entries in the file is the order --list-locations reports them in.
type Location struct {
	Code      string  `yaml:"code"`
	Name      string  `yaml:"name"`
	Latitude  float64 `yaml:"latitude"`
	Longitude float64 `yaml:"longitude"`
}

// Duration accepts time.ParseDuration strings such as "10s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}

	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

func Load(raw []byte) (Config, error) {
	var cfg Config

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = defaultBaseURL
	}
	if cfg.API.Timeout <= 0 {
		cfg.API.Timeout = defaultTimeout
	}

	if len(cfg.Locations) == 0 {
		return Config{}, fmt.Errorf("config: no locations defined")
	}

	seen := make(map[string]struct{}, len(cfg.Locations))
	for _, location := range cfg.Locations {
		if location.Code == "" {
			return Config{}, fmt.Errorf("config: location %q has no code", location.Name)
		}
		if _, ok := seen[location.Code]; ok {
			return Config{}, fmt.Errorf("config: duplicate location code %q", location.Code)
		}
		seen[location.Code] = struct{}{}
	}

	return cfg, nil
}
