// Package fiberapp serves the listings endpoint on a Fiber app.
package fiberapp

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/telemetry"
	"github.com/relevanceai/fetch-listings/utils"
)

type Handler struct {
	service *listings.Service
}

func NewHandler(service *listings.Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the endpoint for every method at path. Non-POST methods
// get the adapter's 405.
func (h *Handler) Register(app *fiber.App, path string) {
	app.All(path, h.fetchListings)
}

func (h *Handler) fetchListings(c *fiber.Ctx) error {
	var body []byte
	if c.Method() == fiber.MethodPost {
		// fasthttp reuses the request buffer once the handler returns
		body = append([]byte(nil), c.Body()...)
	}
	return h.serve(c, body)
}

// errorHandler answers bodies rejected by BodyLimit on the listings path the
// way the other hosts do: the body is dropped and the request still runs.
func (h *Handler) errorHandler(path string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if errors.Is(err, fiber.ErrRequestEntityTooLarge) && c.Path() == path {
			utils.Warn("%s (limit=%d)", constants.LogBodyTooLarge, constants.MaxBodyBytes)
			return h.serve(c, nil)
		}
		return fiber.DefaultErrorHandler(c, err)
	}
}

func (h *Handler) serve(c *fiber.Ctx, body []byte) error {
	start := time.Now()
	method := c.Method()

	reqID := strings.TrimSpace(c.Get(constants.HeaderRequestID))
	if reqID == "" {
		reqID = utils.NewRequestID()
	}
	ctx := utils.WithRequestID(c.UserContext(), reqID)
	c.Set(constants.HeaderRequestID, reqID)

	res := h.service.Handle(ctx, listings.Request{Method: method, Body: body})
	for k, vs := range res.Header {
		for _, v := range vs {
			c.Append(k, v)
		}
	}
	err := c.Status(res.Status).JSON(res.Body)
	telemetry.ObserveRequest(constants.HandlerName, method, res.Status, time.Since(start))
	return err
}

// NewApp builds a Fiber app with the listings endpoint plus health and
// metrics routes.
func NewApp(cfg *config.Config, service *listings.Service) *fiber.App {
	if cfg == nil {
		cfg = config.Default()
	}
	h := NewHandler(service)
	app := fiber.New(fiber.Config{
		AppName:               constants.ServiceName,
		DisableStartupMessage: true,
		BodyLimit:             constants.MaxBodyBytes,
		ErrorHandler:          h.errorHandler(cfg.HTTP.Path),
	})
	app.Get(constants.HealthPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": constants.ResponseHealthy})
	})
	app.Get(constants.MetricsPath, adaptor.HTTPHandler(telemetry.MetricsHandler()))
	h.Register(app, cfg.HTTP.Path)
	return app
}
