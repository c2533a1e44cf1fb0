package http

import (
	"net/http"
	"sync"

	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/telemetry"
	"github.com/relevanceai/fetch-listings/utils"
)

var (
	initServerless    sync.Once
	initErr           error
	serverlessHandler http.Handler
	handlerMutex      sync.RWMutex
)

// ServerlessHandler is the function body shared by serverless platforms. The
// service is built from environment configuration on the first invocation.
func ServerlessHandler(w http.ResponseWriter, r *http.Request) {
	initServerless.Do(func() {
		h, err := newServerlessHandler()
		handlerMutex.Lock()
		serverlessHandler, initErr = h, err
		handlerMutex.Unlock()
	})

	handlerMutex.RLock()
	h, err := serverlessHandler, initErr
	handlerMutex.RUnlock()

	if err != nil || h == nil {
		WriteResult(w, listings.Result{
			Status: http.StatusInternalServerError,
			Body:   listings.ErrorBody{Error: constants.ResponseInternalError},
		})
		return
	}
	h.ServeHTTP(w, r)
}

// newServerlessHandler logs its own failure once; later calls only see the
// cached error.
func newServerlessHandler() (http.Handler, error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, utils.Errorf(constants.LogServerlessInit, err)
	}
	utils.SetLevel(cfg.Log.Level)
	if _, err := telemetry.Init(cfg); err != nil {
		utils.Warn("tracing disabled: %v", err)
	}
	svc, err := listings.New(cfg)
	if err != nil {
		return nil, utils.Errorf(constants.LogServerlessInit, err)
	}
	return telemetry.WrapHandler(constants.HandlerName, NewHandler(svc)), nil
}

// ResetServerless drops the cached handler so the next call rebuilds it
// (for testing).
func ResetServerless() {
	handlerMutex.Lock()
	defer handlerMutex.Unlock()
	initServerless = sync.Once{}
	initErr = nil
	serverlessHandler = nil
}
