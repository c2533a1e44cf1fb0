package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, "https://prod.marketplace.tryrelevance.com/public/listings", c.Marketplace.BaseURL)
	assert.Equal(t, "https://marketplace.tryrelevance.com/listings/{{ display_id|safe }}", c.Marketplace.ListingURLTemplate)
	assert.Equal(t, 10*time.Second, c.Marketplace.Timeout.Std())
	assert.Equal(t, "/api/fetch-listings", c.HTTP.Path)
	assert.Equal(t, 3000, c.HTTP.Port)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "none", c.Tracing.Exporter)
	assert.Equal(t, ":3000", c.Addr())
	assert.NoError(t, c.Validate())
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeTemp(t, "listings.config.json", `{
		"marketplace": {"base_url": "http://localhost:9999/listings", "timeout": "2s"},
		"http": {"host": "127.0.0.1", "port": 8080, "path": "/hook"},
		"log": {"level": "debug"},
		"tracing": {"exporter": "stdout", "service_name": "svc"}
	}`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999/listings", c.Marketplace.BaseURL)
	assert.Equal(t, 2*time.Second, c.Marketplace.Timeout.Std())
	// unset fields keep their defaults
	assert.Contains(t, c.Marketplace.ListingURLTemplate, "display_id")
	assert.Equal(t, "127.0.0.1:8080", c.Addr())
	assert.Equal(t, "/hook", c.HTTP.Path)
	assert.Equal(t, "debug", c.Log.Level)
	assert.Equal(t, "stdout", c.Tracing.Exporter)
	assert.Equal(t, "svc", c.Tracing.ServiceName)
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeTemp(t, "listings.config.yaml", `
marketplace:
  base_url: http://upstream.test/public/listings
  timeout: 3
http:
  port: 9090
`)
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://upstream.test/public/listings", c.Marketplace.BaseURL)
	assert.Equal(t, 3*time.Second, c.Marketplace.Timeout.Std())
	assert.Equal(t, 9090, c.HTTP.Port)
	assert.Equal(t, "/api/fetch-listings", c.HTTP.Path)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)

	_, err = LoadConfig(writeTemp(t, "bad.json", "not a json"))
	assert.Error(t, err)

	_, err = LoadConfig(writeTemp(t, "bad.json", `{"marketplace":{"timeout":"soon"}}`))
	assert.Error(t, err)

	_, err = LoadConfig(writeTemp(t, "bad.yaml", "marketplace: [1, 2"))
	assert.Error(t, err)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LISTINGS_MARKETPLACE_URL", "http://override.test/listings")
	t.Setenv("LISTINGS_LISTING_URL_TEMPLATE", "http://links.test/{{ display_id }}")
	t.Setenv("LISTINGS_UPSTREAM_TIMEOUT", "1500ms")
	t.Setenv("LISTINGS_PATH", "/api/other")
	t.Setenv("PORT", "4000")
	t.Setenv("LISTINGS_LOG_LEVEL", "WARN")
	t.Setenv("LISTINGS_TRACING_EXPORTER", "otlp")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://override.test/listings", c.Marketplace.BaseURL)
	assert.Equal(t, "http://links.test/{{ display_id }}", c.Marketplace.ListingURLTemplate)
	assert.Equal(t, 1500*time.Millisecond, c.Marketplace.Timeout.Std())
	assert.Equal(t, "/api/other", c.HTTP.Path)
	assert.Equal(t, 4000, c.HTTP.Port)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "otlp", c.Tracing.Exporter)
	assert.Equal(t, "localhost:4318", c.Tracing.Endpoint)
}

func TestLoad_ConfigPathFromEnv(t *testing.T) {
	path := writeTemp(t, "c.json", `{"http":{"path":"/from-file"}}`)
	t.Setenv("LISTINGS_CONFIG", path)
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from-file", c.HTTP.Path)
}

func TestLoad_DiscoversWorkingDirectoryFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "listings.config.yaml"), []byte("http:\n  port: 8081\n"), 0o600))
	t.Chdir(dir)

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8081, c.HTTP.Port)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv("PORT", "eighty")
	_, err := Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad base url", func(c *Config) { c.Marketplace.BaseURL = "not a url" }},
		{"relative path", func(c *Config) { c.HTTP.Path = "api" }},
		{"port out of range", func(c *Config) { c.HTTP.Port = 70000 }},
		{"unknown log level", func(c *Config) { c.Log.Level = "loud" }},
		{"unknown exporter", func(c *Config) { c.Tracing.Exporter = "jaeger" }},
		{"zero timeout", func(c *Config) { c.Marketplace.Timeout = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
