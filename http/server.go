package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/telemetry"
	"github.com/relevanceai/fetch-listings/utils"
)

const shutdownTimeout = 10 * time.Second

// NewRouter mounts the listings endpoint at the configured path together with
// health and metrics routes.
func NewRouter(cfg *config.Config, svc *listings.Service) *mux.Router {
	if cfg == nil {
		cfg = config.Default()
	}
	r := mux.NewRouter()
	r.HandleFunc(constants.HealthPath, healthHandler).Methods(http.MethodGet)
	r.Handle(constants.MetricsPath, telemetry.MetricsHandler()).Methods(http.MethodGet)
	r.Handle(cfg.HTTP.Path, telemetry.WrapHandler(constants.HandlerName, NewHandler(svc)))
	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteHTTPJSON(w, http.StatusOK, map[string]string{"status": constants.ResponseHealthy}); err != nil {
		utils.Error(constants.LogJSONEncodeFailed, err)
	}
}

// StartServer serves handler on addr until ctx is cancelled, then shuts down
// gracefully.
func StartServer(ctx context.Context, addr string, handler http.Handler) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.Info(constants.LogServerStarting, addr, constants.EngineHTTP)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		utils.Info(constants.LogServerStopped, ctx.Err())
		return nil
	}
}
