package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/utils"
)


// NewHandler exposes the listings adapter as an http.Handler. Method checks
// happen inside the adapter so every verb reaches it.
func NewHandler(svc *listings.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := utils.RequestID(r)
		ctx := utils.WithRequestID(r.Context(), reqID)
		w.Header().Set(constants.HeaderRequestID, reqID)

		var body []byte
		if r.Method == http.MethodPost && r.Body != nil {
			b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, constants.MaxBodyBytes))
			var tooLarge *http.MaxBytesError
			switch {
			case errors.As(err, &tooLarge):
				utils.WarnCtx(ctx, constants.LogBodyTooLarge, "limit", tooLarge.Limit)
			case err != nil:
				utils.DebugCtx(ctx, constants.LogInvalidBody, "reason", err.Error())
			default:
				body = b
			}
		}

		res := svc.Handle(ctx, listings.Request{Method: r.Method, Body: body})
		WriteResult(w, res)
	})
}

// WriteResult copies an adapter result onto a ResponseWriter.
func WriteResult(w http.ResponseWriter, res listings.Result) {
	for k, vs := range res.Header {
		for _, v := range vs {
			w.Header().Add(k, v)
		}
	}
	if err := utils.WriteHTTPJSON(w, res.Status, res.Body); err != nil {
		utils.Error(constants.LogJSONEncodeFailed, err)
	}
}
