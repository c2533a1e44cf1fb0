package constants

import "time"

// Marketplace endpoints
const (
	MarketplaceBaseURL = "https://prod.marketplace.tryrelevance.com/public/listings"
	// ListingURLTemplate is rendered with pongo2; display_id is marked safe so
	// identifiers are not HTML-escaped into the link.
	ListingURLTemplate = "https://marketplace.tryrelevance.com/listings/{{ display_id|safe }}"
)

// Listings query. These never depend on the inbound request.
const (
	QueryEntityType     = "entityType"
	QueryOrderBy        = "orderBy"
	QueryOrderDirection = "orderDirection"
	QueryPage           = "page"
	QueryPageSize       = "pageSize"

	EntityTypeAgent    = "agent"
	OrderByCloneCount  = "clone_count"
	OrderDirectionDesc = "desc"
	FirstPage          = "1"
	ListingsPageSize   = "3"
)

// ListingSlots is the number of flattened listing positions in a response.
const ListingSlots = 3

// DefaultUpstreamTimeout bounds a single marketplace call.
const DefaultUpstreamTimeout = 10 * time.Second

// Upstream JSON fields
const (
	FieldResults     = "results"
	FieldName        = "name"
	FieldDescription = "description"
	FieldDisplayID   = "display_id"
	FieldImage       = "image"
)
