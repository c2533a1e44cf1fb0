package marketplace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/telemetry"
	"github.com/relevanceai/fetch-listings/utils"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Fetcher returns the current top listings. The listings adapter depends on
// this rather than on Client so tests can serve fixed upstream data.
type Fetcher interface {
	FetchListings(ctx context.Context) ([]Listing, error)
}

// UpstreamError reports a non-2xx marketplace response.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("marketplace returned status %d", e.StatusCode)
}

// Client queries the public marketplace listings endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient builds a Client for the configured base URL. The listings query is
// fixed and appended here once.
func NewClient(cfg config.MarketplaceConfig) (*Client, error) {
	endpoint, err := ListingsURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}
	timeout := cfg.Timeout.Std()
	if timeout <= 0 {
		timeout = constants.DefaultUpstreamTimeout
	}
	return &Client{
		endpoint: endpoint,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}, nil
}

// ListingsURL appends the top-agents query to base.
func ListingsURL(base string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid marketplace url %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid marketplace url %q: missing scheme or host", base)
	}
	q := u.Query()
	q.Set(constants.QueryEntityType, constants.EntityTypeAgent)
	q.Set(constants.QueryOrderBy, constants.OrderByCloneCount)
	q.Set(constants.QueryOrderDirection, constants.OrderDirectionDesc)
	q.Set(constants.QueryPage, constants.FirstPage)
	q.Set(constants.QueryPageSize, constants.ListingsPageSize)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// Endpoint returns the full upstream URL including the query.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchListings performs one GET against the marketplace.
func (c *Client) FetchListings(ctx context.Context) (listings []Listing, err error) {
	start := time.Now()
	defer func() {
		telemetry.ObserveUpstream(outcome(err), time.Since(start))
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set(constants.HeaderAccept, constants.ContentTypeJSON)

	utils.DebugCtx(ctx, constants.LogFetchingListings, "url", c.endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketplace request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read marketplace response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return ParseListings(data)
}

func outcome(err error) string {
	if err == nil {
		return telemetry.OutcomeOK
	}
	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return telemetry.OutcomeUpstreamStatus
	}
	return telemetry.OutcomeError
}
