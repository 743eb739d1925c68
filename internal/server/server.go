package server

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/memfill/internal/config"
	"github.com/MKhiriev/memfill/internal/logger"
)

const readHeaderTimeout = 5 * time.Second

// NewServer binds cfg.StatusAddress and returns a server for handler.
func NewServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (Server, error) {
	if cfg.StatusAddress == "" {
		return nil, errNoAddress
	}

	logger.Info().Msg("creating new server...")

	listener, err := net.Listen("tcp", cfg.StatusAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.StatusAddress, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           handler,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener:        listener,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}
