package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/relevanceai/fetch-listings/config"
	"github.com/relevanceai/fetch-listings/constants"
	"github.com/relevanceai/fetch-listings/fiberapp"
	listingshttp "github.com/relevanceai/fetch-listings/http"
	"github.com/relevanceai/fetch-listings/listings"
	"github.com/relevanceai/fetch-listings/telemetry"
	"github.com/relevanceai/fetch-listings/utils"
)

const fiberShutdownTimeout = 10 * time.Second

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	var addr, engine string
	cmd := &cobra.Command{
		Use:   constants.CmdServe,
		Short: constants.DescServe,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				utils.Error("failed to load config: %v", err)
				exit(1)
				return
			}
			if addr == "" {
				addr = cfg.Addr()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdown, err := telemetry.Init(cfg)
			if err != nil {
				utils.Warn("tracing disabled: %v", err)
			}
			defer func() { _ = shutdown(context.Background()) }()

			if err := serve(ctx, cfg, engine, addr); err != nil {
				utils.Error("server failed: %v", err)
				exit(1)
			}
		},
	}
	cmd.Flags().StringVar(&addr, constants.FlagAddr, "", "listen address (defaults to config host and PORT)")
	cmd.Flags().StringVar(&engine, constants.FlagEngine, constants.EngineHTTP, "server engine: http or fiber")
	return cmd
}

// serve runs the chosen engine on addr until ctx is cancelled.
func serve(ctx context.Context, cfg *config.Config, engine, addr string) error {
	svc, err := listings.New(cfg)
	if err != nil {
		return err
	}

	switch strings.ToLower(engine) {
	case "", constants.EngineHTTP:
		return listingshttp.StartServer(ctx, addr, listingshttp.NewRouter(cfg, svc))
	case constants.EngineFiber:
		return serveFiber(ctx, cfg, svc, addr)
	default:
		return fmt.Errorf("unknown engine %q", engine)
	}
}

func serveFiber(ctx context.Context, cfg *config.Config, svc *listings.Service, addr string) error {
	app := fiberapp.NewApp(cfg, svc)

	errCh := make(chan error, 1)
	go func() {
		utils.Info(constants.LogServerStarting, addr, constants.EngineFiber)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		if err := app.ShutdownWithTimeout(fiberShutdownTimeout); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		utils.Info(constants.LogServerStopped, ctx.Err())
		return nil
	}
}
