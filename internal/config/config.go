// internal/config/config.go

// Package config loads the generator configuration from flags, environment
// and an optional YAML or JSON file, and turns it into ready-to-use
// synthesizers.
package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/mwiater/farmprompts/internal/dataset"
	"github.com/mwiater/farmprompts/internal/response"
)

// EnvPrefix prefixes environment overrides, e.g. FARMPROMPTS_COUNT=50.
const EnvPrefix = "FARMPROMPTS"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds everything a run needs.
type Config struct {
	// Preset selects the builtin templates and word lists.
	Preset string `mapstructure:"preset"`
	// DataDir holds <category>.json or <category>.yaml files that replace
	// the embedded word lists of the same name.
	DataDir string `mapstructure:"data_dir"`
	// Count is the number of records to generate.
	Count int `mapstructure:"count"`
	// Output is the CSV path written by generate and read by analyze.
	Output string `mapstructure:"output"`
	// Seed makes generation reproducible. Zero seeds from the clock.
	Seed uint64 `mapstructure:"seed"`

	// Templates replace the preset templates when non-empty.
	Templates []string `mapstructure:"templates"`
	// Categories add to or replace word lists by name.
	Categories map[string][]string `mapstructure:"categories"`
	// Ranges add or replace integer categories by name.
	Ranges map[string]RangeSpec `mapstructure:"ranges"`
	// Bindings add to or replace the preset placeholder bindings.
	Bindings map[string]string `mapstructure:"bindings"`

	// Rules replace the builtin response table when non-empty.
	Rules []response.Rule `mapstructure:"rules"`
	// Fallback replaces the builtin fallback sentences when set. It must
	// hold exactly two sentences.
	Fallback []string `mapstructure:"fallback"`

	Ollama OllamaConfig `mapstructure:"ollama"`
	Log    LogConfig    `mapstructure:"log"`
}

// OllamaConfig points the interactive mode at a text-generation host.
type OllamaConfig struct {
	Host    string        `mapstructure:"host"`
	Model   string        `mapstructure:"model"`
	Timeout time.Duration `mapstructure:"timeout"`
	Debug   bool          `mapstructure:"debug"`
}

// LogConfig controls logging output.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("preset", DefaultPreset)
	v.SetDefault("count", dataset.DefaultCount)
	v.SetDefault("output", "prompts_and_responses.csv")
	v.SetDefault("seed", 0)
	v.SetDefault("ollama.host", "http://localhost:11434")
	v.SetDefault("ollama.model", "llama2")
	v.SetDefault("ollama.timeout", 2*time.Minute)
	v.SetDefault("log.level", "info")
}

// Load reads the config file at path (if any) into v, applies environment
// overrides and decodes the result. Flag bindings on v take precedence over
// the file, as usual with viper.
func Load(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration produced by SetDefaults alone.
func Default() *Config {
	cfg, err := Load(viper.New(), "")
	if err != nil {
		panic(err)
	}
	return cfg
}

// Validate checks values that do not need the word lists.
func (c *Config) Validate() error {
	if _, ok := LookupPreset(c.Preset); !ok {
		return fmt.Errorf("%w: unknown preset %q (have %s)", ErrInvalidConfig, c.Preset, strings.Join(PresetNames(), ", "))
	}
	if c.Count < 0 {
		return fmt.Errorf("%w: count must not be negative, got %d", ErrInvalidConfig, c.Count)
	}
	if len(c.Fallback) != 0 && len(c.Fallback) != 2 {
		return fmt.Errorf("%w: fallback needs exactly 2 sentences, got %d", ErrInvalidConfig, len(c.Fallback))
	}
	for name, r := range c.Ranges {
		if r.Min > r.Max {
			return fmt.Errorf("%w: range %q has min %d > max %d", ErrInvalidConfig, name, r.Min, r.Max)
		}
		if r.Min == math.MinInt && r.Max == math.MaxInt {
			return fmt.Errorf("%w: range %q spans every int", ErrInvalidConfig, name)
		}
	}
	return nil
}
