package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/relevanceai/fetch-listings/constants"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Marketplace MarketplaceConfig `json:"marketplace" yaml:"marketplace"`
	HTTP        HTTPConfig        `json:"http" yaml:"http"`
	Log         LogConfig         `json:"log" yaml:"log"`
	Tracing     TracingConfig     `json:"tracing" yaml:"tracing"`
}

type MarketplaceConfig struct {
	BaseURL            string   `json:"base_url" yaml:"base_url" validate:"required,url"`
	ListingURLTemplate string   `json:"listing_url_template" yaml:"listing_url_template" validate:"required"`
	Timeout            Duration `json:"timeout" yaml:"timeout" validate:"gt=0"`
}

type HTTPConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port" validate:"gte=0,lte=65535"`
	Path string `json:"path" yaml:"path" validate:"required,startswith=/"`
}

type LogConfig struct {
	Level string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

type TracingConfig struct {
	Exporter    string `json:"exporter" yaml:"exporter" validate:"omitempty,oneof=none stdout otlp"`
	Endpoint    string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty"`
}

// Duration accepts either a Go duration string ("5s") or a number of seconds.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch x := v.(type) {
	case string:
		parsed, err := parseDuration(x)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
	case float64:
		*d = Duration(time.Duration(x * float64(time.Second)))
	case int:
		*d = Duration(time.Duration(x) * time.Second)
	default:
		return fmt.Errorf("invalid duration %v", v)
	}
	return nil
}

// parseDuration accepts "5s" style durations and bare seconds ("5").
func parseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return time.Duration(n * float64(time.Second)), nil
	}
	return time.ParseDuration(s)
}

var validate = validator.New()

// LoadConfig reads a JSON or YAML (by extension) config file. Missing sections
// are filled with defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Load resolves the effective configuration: the file at path (if it exists),
// then environment overrides, then validation. An empty path falls back to
// LISTINGS_CONFIG, then to a listings.config.{json,yaml} in the working
// directory, then to defaults only.
func Load(path string) (*Config, error) {
	if path == "" {
		path = os.Getenv(constants.EnvConfigPath)
	}
	if path == "" {
		path = discover()
	}
	cfg := Default()
	if path != "" {
		loaded, err := LoadConfig(path)
		switch {
		case err == nil:
			cfg = loaded
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func discover() string {
	for _, name := range []string{constants.ConfigFileName, constants.ConfigFileNameYAML} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(constants.EnvMarketplaceURL); v != "" {
		c.Marketplace.BaseURL = v
	}
	if v := os.Getenv(constants.EnvListingURLTemplate); v != "" {
		c.Marketplace.ListingURLTemplate = v
	}
	if v := os.Getenv(constants.EnvUpstreamTimeout); v != "" {
		d, err := parseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", constants.EnvUpstreamTimeout, err)
		}
		c.Marketplace.Timeout = Duration(d)
	}
	if v := os.Getenv(constants.EnvPath); v != "" {
		c.HTTP.Path = v
	}
	if v := os.Getenv(constants.EnvPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", constants.EnvPort, err)
		}
		c.HTTP.Port = port
	}
	if v := os.Getenv(constants.EnvLogLevel); v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v := os.Getenv(constants.EnvTracingExporter); v != "" {
		c.Tracing.Exporter = strings.ToLower(v)
	}
	if v := os.Getenv(constants.EnvOTLPEndpoint); v != "" {
		c.Tracing.Endpoint = v
	}
	if v := os.Getenv(constants.EnvServiceName); v != "" {
		c.Tracing.ServiceName = v
	}
	return nil
}

// Validate checks the configuration with struct tags.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr returns the listen address for the local server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.HTTP.Host, c.HTTP.Port)
}
