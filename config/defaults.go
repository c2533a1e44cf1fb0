package config

import "github.com/relevanceai/fetch-listings/constants"

// Default returns a configuration that reproduces the production endpoint
// without any file or environment.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Marketplace.BaseURL == "" {
		c.Marketplace.BaseURL = constants.MarketplaceBaseURL
	}
	if c.Marketplace.ListingURLTemplate == "" {
		c.Marketplace.ListingURLTemplate = constants.ListingURLTemplate
	}
	if c.Marketplace.Timeout <= 0 {
		c.Marketplace.Timeout = Duration(constants.DefaultUpstreamTimeout)
	}
	if c.HTTP.Port == 0 {
		c.HTTP.Port = constants.DefaultPort
	}
	if c.HTTP.Path == "" {
		c.HTTP.Path = constants.DefaultPath
	}
	if c.Log.Level == "" {
		c.Log.Level = constants.LogLevelInfo
	}
	if c.Tracing.Exporter == "" {
		c.Tracing.Exporter = constants.TracingExporterNone
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = constants.ServiceName
	}
}
