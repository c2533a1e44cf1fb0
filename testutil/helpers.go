package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Marketplace is a fake upstream listings API.
type Marketplace struct {
	*httptest.Server
	hits    atomic.Int64
	lastReq atomic.Pointer[http.Request]
}

// NewMarketplace serves body with the given status for every request and
// closes the server when the test ends.
func NewMarketplace(t testing.TB, status int, body string) *Marketplace {
	t.Helper()
	m := &Marketplace{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.hits.Add(1)
		m.lastReq.Store(r.Clone(r.Context()))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(m.Close)
	return m
}

// Hits is the number of requests served so far.
func (m *Marketplace) Hits() int64 {
	return m.hits.Load()
}

// LastRequest returns the most recent request, or nil.
func (m *Marketplace) LastRequest() *http.Request {
	return m.lastReq.Load()
}

// Sample upstream bodies.
const (
	OneListing = `{"results":[{"name":"A","description":"d","display_id":"x","image":"i"}]}`

	FiveListings = `{"results":[
		{"name":"one","description":"first","display_id":"id-1","image":"img-1"},
		{"name":"two","description":"second","display_id":"id-2","image":"img-2"},
		{"name":"three","description":"third","display_id":"id-3","image":"img-3"},
		{"name":"four","description":"fourth","display_id":"id-4","image":"img-4"},
		{"name":"five","description":"fifth","display_id":"id-5","image":"img-5"}
	]}`

	NoResults = `{"total":0}`
)
