// Package config loads runtime settings for the contact form binaries.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// EnvPrefix namespaces environment overrides (CONTACTFORM_ADDR, ...).
const EnvPrefix = "contactform"

var (
	renderers     = []string{"vanilla", "tui"}
	outputFormats = []string{"json", "form", "pretty"}
	logFormats    = []string{"json", "console"}
)

// Config carries every setting the binaries read.
type Config struct {
	Addr          string        `yaml:"addr" envconfig:"ADDR"`
	Renderer      string        `yaml:"renderer" envconfig:"RENDERER"`
	TemplatesDir  string        `yaml:"templates_dir" envconfig:"TEMPLATES_DIR"`
	Theme         string        `yaml:"theme" envconfig:"THEME"`
	ThemeVariant  string        `yaml:"theme_variant" envconfig:"THEME_VARIANT"`
	OutputFormat  string        `yaml:"output_format" envconfig:"OUTPUT_FORMAT"`
	LogLevel      string        `yaml:"log_level" envconfig:"LOG_LEVEL"`
	LogFormat     string        `yaml:"log_format" envconfig:"LOG_FORMAT"`
	ShutdownGrace time.Duration `yaml:"shutdown_grace" envconfig:"SHUTDOWN_GRACE"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Addr:          ":8383",
		Renderer:      "vanilla",
		OutputFormat:  "json",
		LogLevel:      "info",
		LogFormat:     "json",
		ShutdownGrace: 5 * time.Second,
	}
}

// Load layers defaults, the optional YAML file at path, a .env file in the
// working directory and CONTACTFORM_* environment variables, then validates
// the result.
func Load(path string) (Config, error) {
	cfg := Default()

	if path = strings.TrimSpace(path); path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return Config{}, err
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load .env: %w", err)
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

// Validate rejects settings the binaries cannot act on.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Addr) == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if !oneOf(c.Renderer, renderers) {
		errs = append(errs, fmt.Errorf("renderer %q is not one of %s", c.Renderer, strings.Join(renderers, ", ")))
	}
	if !oneOf(c.OutputFormat, outputFormats) {
		errs = append(errs, fmt.Errorf("output format %q is not one of %s", c.OutputFormat, strings.Join(outputFormats, ", ")))
	}
	if !oneOf(c.LogFormat, logFormats) {
		errs = append(errs, fmt.Errorf("log format %q is not one of %s", c.LogFormat, strings.Join(logFormats, ", ")))
	}
	if c.ShutdownGrace < 0 {
		errs = append(errs, errors.New("shutdown grace must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	return lo.Contains(allowed, value)
}
