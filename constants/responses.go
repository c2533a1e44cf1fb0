package constants

// HTTP Response Messages
const (
	ResponseMethodNotAllowed = "Method not allowed"
	ResponseUpstreamFailed   = "Failed to fetch listings from marketplace"
	ResponseInternalError    = "Internal server error"
	ResponseHealthy          = "healthy"
)

// Error Messages for Logging
const (
	LogMarketplaceError = "Marketplace API error"
	LogServerError      = "Server error in fetch-listings"
	LogInvalidBody      = "ignoring request body"
	LogPersonalization  = "personalization hint (not applied)"
	LogJSONEncodeFailed = "json.Encode failed: %v"
	LogServerStarting   = "fetch-listings listening on %s (engine=%s)"
	LogServerStopped    = "server stopped: %v"
	LogFetchingListings = "fetching marketplace listings"
	LogUpstreamEndpoint = "marketplace endpoint: %s"
	LogListingsServed   = "listings served"
	LogBodyTooLarge     = "request body over limit, ignoring it"
	LogServerlessInit   = "fetch-listings init failed: %w"
)
