package constants

// MaxBodyBytes bounds how much of the inbound body is read. The body only
// carries contact hints, so anything larger is dropped.
const MaxBodyBytes = 1 << 20

// ContentTypeJSON is the only body type the endpoint produces.
const ContentTypeJSON = "application/json"

// HTTP Headers
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	HeaderAllow       = "Allow"
	HeaderRequestID   = "X-Request-Id"
)
