package listings

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/marketplace"
	"github.com/relevanceai/fetch-listings/utils"
)

// maxLoggedBody caps how much of an upstream error body reaches the logs.
const maxLoggedBody = 4096

// Request is an inbound call independent of the hosting convention.
type Request struct {
	Method string
	Body   []byte
}

// Result is what a hosting adapter writes back.
type Result struct {
	Status int
	Header http.Header
	Body   any
}

// Service turns one inbound request into one marketplace query and a
// flattened response. It holds no per-request state.
type Service struct {
	fetcher marketplace.Fetcher
	link    LinkFunc
}

// NewService wires a fetcher and link renderer. A nil link renders no URLs.
func NewService(fetcher marketplace.Fetcher, link LinkFunc) *Service {
	return &Service{fetcher: fetcher, link: link}
}

// New builds a Service backed by the real marketplace client.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	client, err := marketplace.NewClient(cfg.Marketplace)
	if err != nil {
		return nil, err
	}
	utils.Debug(constants.LogUpstreamEndpoint, client.Endpoint())
	tpl, err := marketplace.NewLinkTemplate(cfg.Marketplace.ListingURLTemplate)
	if err != nil {
		return nil, err
	}
	return NewService(client, tpl.URL), nil
}

// Handle runs the adapter pipeline. It always returns a Result; failures are
// logged and mapped to 405, 502 or 500.
func (s *Service) Handle(ctx context.Context, req Request) (res Result) {
	if req.Method != http.MethodPost {
		header := http.Header{}
		header.Set(constants.HeaderAllow, http.MethodPost)
		return Result{
			Status: http.StatusMethodNotAllowed,
			Header: header,
			Body:   ErrorBody{Error: constants.ResponseMethodNotAllowed},
		}
	}

	defer func() {
		if r := recover(); r != nil {
			utils.ErrorCtx(ctx, constants.LogServerError, "panic", fmt.Sprint(r))
			res = internalError()
		}
	}()

	body := ParseRequestBody(ctx, req.Body)
	if tag := body.PersonalizationTag(); tag != "" {
		utils.DebugCtx(ctx, constants.LogPersonalization, "tag", tag)
	}

	resp, err := s.Fetch(ctx)
	if err != nil {
		var upstreamErr *marketplace.UpstreamError
		if errors.As(err, &upstreamErr) {
			utils.ErrorCtx(ctx, constants.LogMarketplaceError,
				"status", upstreamErr.StatusCode,
				"body", utils.Truncate(upstreamErr.Body, maxLoggedBody))
			return Result{
				Status: http.StatusBadGateway,
				Body:   ErrorBody{Error: constants.ResponseUpstreamFailed},
			}
		}
		utils.ErrorCtx(ctx, constants.LogServerError, "error", err.Error())
		return internalError()
	}
	utils.InfoCtx(ctx, constants.LogListingsServed, "filled", resp.Filled())
	return Result{Status: http.StatusOK, Body: resp}
}

// Fetch queries the marketplace and flattens the result.
func (s *Service) Fetch(ctx context.Context) (Response, error) {
	if s.fetcher == nil {
		return Response{}, errors.New("listings service has no fetcher")
	}
	listings, err := s.fetcher.FetchListings(ctx)
	if err != nil {
		return Response{}, err
	}
	return Flatten(listings, s.link)
}

func internalError() Result {
	return Result{
		Status: http.StatusInternalServerError,
		Body:   ErrorBody{Error: constants.ResponseInternalError},
	}
}
