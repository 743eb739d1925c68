package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/memfill/internal/logger"
	"github.com/MKhiriev/memfill/internal/mock"
	"github.com/MKhiriev/memfill/models"
)

func newStatusRouter(t *testing.T) (http.Handler, *mock.MockStatusSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	source := mock.NewMockStatusSource(ctrl)

	h, err := NewHandler(source, logger.Nop())
	require.NoError(t, err)

	return h.Init(), source
}

func TestNewHandler_NilSource(t *testing.T) {
	h, err := NewHandler(nil, logger.Nop())
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrNilStatusSource)
}

func TestGetStatus(t *testing.T) {
	router, source := newStatusRouter(t)

	deadline := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	want := models.Status{
		Target:           models.Target{Mode: models.AllocationModeAbsolute, Bytes: 1 << 30, Percent: 25},
		Allocated:        1 << 30,
		Chunks:           2,
		AllocatedPercent: 25,
		Memory:           models.MemInfo{Available: 3 << 30, Total: 4 << 30},
		Deadline:         deadline,
	}
	source.EXPECT().Status(gomock.Any()).Return(want, nil)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))

	var got models.Status
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, want.Target, got.Target)
	assert.Equal(t, want.Allocated, got.Allocated)
	assert.Equal(t, want.Chunks, got.Chunks)
	assert.Equal(t, want.Memory, got.Memory)
	assert.True(t, deadline.Equal(got.Deadline))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.Contains(t, raw, "allocated_bytes")
	assert.Contains(t, raw, "deadline")
}

func TestGetStatus_SourceError(t *testing.T) {
	router, source := newStatusRouter(t)
	source.EXPECT().Status(gomock.Any()).Return(models.Status{}, assert.AnError)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGetHealth(t *testing.T) {
	router, _ := newStatusRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestRoutes_UnknownAndWrongMethod(t *testing.T) {
	router, _ := newStatusRouter(t)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/status", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
