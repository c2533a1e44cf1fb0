package marketplace

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	cfg := config.Default().Marketplace
	cfg.BaseURL = baseURL
	c, err := NewClient(cfg)
	require.NoError(t, err)
	return c
}

func TestListingsURL(t *testing.T) {
	got, err := ListingsURL("https://prod.marketplace.tryrelevance.com/public/listings")
	require.NoError(t, err)
	assert.Equal(t,
		"https://prod.marketplace.tryrelevance.com/public/listings?entityType=agent&orderBy=clone_count&orderDirection=desc&page=1&pageSize=3",
		got)

	// query values on the base are replaced, not duplicated
	got, err = ListingsURL("http://localhost/listings?pageSize=50&extra=1")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost/listings?entityType=agent&extra=1&orderBy=clone_count&orderDirection=desc&page=1&pageSize=3", got)

	_, err = ListingsURL("/relative/only")
	assert.Error(t, err)
	_, err = ListingsURL("://bad")
	assert.Error(t, err)
}

func TestFetchListings_Success(t *testing.T) {
	srv := testutil.NewMarketplace(t, http.StatusOK, testutil.OneListing)
	c := newTestClient(t, srv.URL+"/public/listings")

	listings, err := c.FetchListings(context.Background())
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, Listing{Name: "A", Description: "d", DisplayID: "x", Image: "i"}, listings[0])

	req := srv.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, http.MethodGet, req.Method)
	assert.Equal(t, "application/json", req.Header.Get("Accept"))
	assert.Equal(t, "/public/listings", req.URL.Path)
	q := req.URL.Query()
	assert.Equal(t, "agent", q.Get("entityType"))
	assert.Equal(t, "clone_count", q.Get("orderBy"))
	assert.Equal(t, "desc", q.Get("orderDirection"))
	assert.Equal(t, "1", q.Get("page"))
	assert.Equal(t, "3", q.Get("pageSize"))
	assert.Equal(t, int64(1), srv.Hits())
}

func TestFetchListings_UpstreamStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusNotFound, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		srv := testutil.NewMarketplace(t, status, `{"message":"nope"}`)
		c := newTestClient(t, srv.URL)

		_, err := c.FetchListings(context.Background())
		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr), "status %d", status)
		assert.Equal(t, status, upstreamErr.StatusCode)
		assert.Equal(t, `{"message":"nope"}`, upstreamErr.Body)
	}
}

func TestFetchListings_NotModifiedIsUpstreamError(t *testing.T) {
	srv := testutil.NewMarketplace(t, http.StatusNotModified, "")
	c := newTestClient(t, srv.URL)
	_, err := c.FetchListings(context.Background())
	var upstreamErr *UpstreamError
	assert.True(t, errors.As(err, &upstreamErr))
}

func TestFetchListings_MalformedBody(t *testing.T) {
	srv := testutil.NewMarketplace(t, http.StatusOK, `{"results":[`)
	c := newTestClient(t, srv.URL)
	_, err := c.FetchListings(context.Background())
	assert.ErrorIs(t, err, ErrInvalidJSON)
}

func TestFetchListings_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := newTestClient(t, base)
	_, err := c.FetchListings(context.Background())
	require.Error(t, err)
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestFetchListings_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	cfg := config.Default().Marketplace
	cfg.BaseURL = srv.URL
	cfg.Timeout = config.Duration(50 * time.Millisecond)
	c, err := NewClient(cfg)
	require.NoError(t, err)

	_, err = c.FetchListings(context.Background())
	assert.Error(t, err)
}

func TestNewClient(t *testing.T) {
	cfg := config.Default().Marketplace
	cfg.Timeout = config.Duration(3 * time.Second)
	c, err := NewClient(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, c.http.Timeout)
	assert.Equal(t,
		"https://prod.marketplace.tryrelevance.com/public/listings?entityType=agent&orderBy=clone_count&orderDirection=desc&page=1&pageSize=3",
		c.Endpoint())

	cfg.BaseURL = "not-a-url"
	_, err = NewClient(cfg)
	assert.Error(t, err)
}
