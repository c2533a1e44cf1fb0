// Package lambda adapts the listings endpoint to AWS API Gateway events.
package lambda

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	listingshttp "github.com/relevanceai/fetch-listings/http"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/telemetry"
)

// Proxy handles REST API (payload v1) events.
type Proxy func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// ProxyV2 handles HTTP API and function URL (payload v2) events.
type ProxyV2 func(context.Context, events.APIGatewayV2HTTPRequest) (events.APIGatewayV2HTTPResponse, error)

// NewProxy adapts h to REST API proxy events.
func NewProxy(h http.Handler) Proxy {
	return httpadapter.New(h).ProxyWithContext
}

// NewProxyV2 adapts h to HTTP API and function URL events.
func NewProxyV2(h http.Handler) ProxyV2 {
	return httpadapter.NewV2(h).ProxyWithContext
}

// NewHandler builds the instrumented listings handler served behind either proxy.
// Routing is left to API Gateway, so every path reaches the adapter.
func NewHandler(cfg *config.Config) (http.Handler, error) {
	svc, err := listings.New(cfg)
	if err != nil {
		return nil, err
	}
	return telemetry.WrapHandler(constants.HandlerName, listingshttp.NewHandler(svc)), nil
}
