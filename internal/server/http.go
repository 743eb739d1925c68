package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/memfill/internal/logger"
)

type httpServer struct {
	server          *http.Server
	listener        net.Listener
	shutdownTimeout time.Duration

	logger *logger.Logger
}

func (h *httpServer) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		h.logger.Info().Str("address", h.Addr()).Msg("Launching HTTP server")
		serveErr <- h.server.Serve(h.listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server Serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(shutdownCtx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}

	h.logger.Info().Msg("HTTP server shutdown gracefully")
	return nil
}

func (h *httpServer) Addr() string {
	return h.listener.Addr().String()
}
