// Package config loads the application configuration from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/drossy/stars/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultTickRate is the number of update ticks per second.
const DefaultTickRate = 60

// Config holds every knob the CLI and the application read at startup.
type Config struct {
	Side         domain.Side `mapstructure:"side"`
	LogLevel     string      `mapstructure:"log_level"`
	Debug        bool        `mapstructure:"debug"`
	TickRate     int         `mapstructure:"tick_rate"`
	InitialState string      `mapstructure:"initial_state"`
	StrictLookup bool        `mapstructure:"strict_lookup"`
	Locale       string      `mapstructure:"locale"`
	HTTPAddr     string      `mapstructure:"http_addr"`
	Redis        RedisConfig `mapstructure:"redis"`
}

// RedisConfig configures last-state persistence. An empty Addr disables it.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Side:     domain.SideClient,
		LogLevel: "info",
		TickRate: DefaultTickRate,
		Locale:   "en",
	}
}

// TickInterval converts the tick rate into the period between ticks.
func (c Config) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / DefaultTickRate
	}
	return time.Second / time.Duration(c.TickRate)
}

// Load reads path over Default. The format is chosen by extension:
// .toml for TOML, anything else is parsed as YAML. A missing file yields
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := Decode(raw, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Side.IsUnknown() {
		cfg.Side = domain.ResolveSide(cfg.Side)
	}
	return cfg, nil
}

// Decode applies a generic key/value map onto cfg.
func Decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build config decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}
