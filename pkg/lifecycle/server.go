// Package lifecycle pkg/lifecycle/server.go runs an HTTP server with signal
// handling and graceful shutdown.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	ShutdownTimeout   = 10 * time.Second
	ReadHeaderTimeout = 5 * time.Second
)

// ServerOptions holds configuration for running a server.
type ServerOptions struct {
	ListenAddr  string
	ServiceName string
	Handler     http.Handler
}

// RunServer starts the HTTP server and blocks until a shutdown signal, a
// server error, or context cancellation.
func RunServer(ctx context.Context, opts *ServerOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log.Info().Str("service", opts.ServiceName).Str("listen_addr", opts.ListenAddr).Msg("Starting service")

	srv := &http.Server{
		Addr:              opts.ListenAddr,
		Handler:           opts.Handler,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			select {
			case errChan <- err:
			default:
				log.Error().Err(err).Msg("HTTP server error")
			}
		}
	}()

	return handleShutdown(ctx, srv, errChan)
}

func handleShutdown(ctx context.Context, srv *http.Server, errChan chan error) error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var runErr error

	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("Received signal, initiating shutdown")
	case err := <-errChan:
		log.Error().Err(err).Msg("Received error, initiating shutdown")
		runErr = fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		log.Info().Msg("Context canceled, initiating shutdown")
		runErr = ctx.Err()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during shutdown")

		if runErr == nil {
			runErr = fmt.Errorf("shutdown error: %w", err)
		}
	}

	return runErr
}
