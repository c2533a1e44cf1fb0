package constants

// ============================================================================
// CONFIGURATION
// ============================================================================

// Configuration Files
const (
	ConfigFileName     = "listings.config.json"
	ConfigFileNameYAML = "listings.config.yaml"
)

// Environment Variables
const (
	EnvDebug              = "LISTINGS_DEBUG"
	EnvConfigPath         = "LISTINGS_CONFIG"
	EnvMarketplaceURL     = "LISTINGS_MARKETPLACE_URL"
	EnvListingURLTemplate = "LISTINGS_LISTING_URL_TEMPLATE"
	EnvUpstreamTimeout    = "LISTINGS_UPSTREAM_TIMEOUT"
	EnvPath               = "LISTINGS_PATH"
	EnvPort               = "PORT"
	EnvLogLevel           = "LISTINGS_LOG_LEVEL"
	EnvTracingExporter    = "LISTINGS_TRACING_EXPORTER"
	EnvOTLPEndpoint       = "OTEL_EXPORTER_OTLP_ENDPOINT"
	EnvServiceName        = "OTEL_SERVICE_NAME"
	EnvLambdaPayload      = "LISTINGS_LAMBDA_PAYLOAD"
)

// Lambda payload formats
const (
	LambdaPayloadV1 = "v1"
	LambdaPayloadV2 = "v2"
)

// Tracing Exporters
const (
	TracingExporterNone   = "none"
	TracingExporterStdout = "stdout"
	TracingExporterOTLP   = "otlp"
)

// Log Levels
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// ============================================================================
// SERVICE
// ============================================================================

const (
	ServiceName    = "fetch-listings"
	ServiceVersion = "0.3.0"
	DefaultPort    = 3000
	// DefaultPath mirrors the route the messaging integration is configured with.
	DefaultPath = "/api/fetch-listings"
	HealthPath  = "/healthz"
	MetricsPath = "/metrics"
	HandlerName = "fetch_listings"
)

// Engines for the local server
const (
	EngineHTTP  = "http"
	EngineFiber = "fiber"
)
