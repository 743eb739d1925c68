package http

import (
	"context"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/models"
)

//go:generate mockgen -source=handler.go -destination=../../mock/status_source_mock.go -package=mock

// StatusSource produces the snapshot served on /status.
type StatusSource interface {
	Status(ctx context.Context) (models.Status, error)
}

type Handler struct {
	source StatusSource

	logger *logger.Logger
}

func NewHandler(source StatusSource, logger *logger.Logger) (*Handler, error) {
	if source == nil {
		return nil, ErrNilStatusSource
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		source: source,
		logger: logger,
	}, nil
}
