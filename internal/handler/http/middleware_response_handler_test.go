package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

func TestResponseWriter_WriteHeader_CalledTwice_IgnoresSecond(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, w.status)
	assert.True(t, w.wroteHeader)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_Write_ImplicitOK(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	n, err := w.Write([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, 5, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	for _, chunk := range []string{"ab", "cde", ""} {
		_, err := w.Write([]byte(chunk))
		require.NoError(t, err)
	}

	assert.Equal(t, 5, w.size)
	assert.Equal(t, "abcde", rr.Body.String())
}
