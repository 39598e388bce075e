package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseWriter_WriteHeaderOnce(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.WriteHeader(http.StatusCreated)
	rw.WriteHeader(http.StatusInternalServerError)

	assert.Equal(t, http.StatusCreated, rw.status)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestResponseWriter_Write(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	n, err := rw.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	_, err = rw.Write([]byte("de"))
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rw.status)
	assert.Equal(t, 5, rw.size)
	assert.Equal(t, []byte("de"), rw.body)
	assert.Equal(t, "abcde", rec.Body.String())
}

func TestResponseWriter_HeadersProxied(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := &responseWriter{ResponseWriter: rec}

	rw.Header().Set("Last-Modified", "Sat, 14 Mar 2026 15:09:26 GMT")
	rw.WriteHeader(http.StatusNotModified)

	assert.Equal(t, "Sat, 14 Mar 2026 15:09:26 GMT", rec.Header().Get("Last-Modified"))
	assert.Zero(t, rw.size)
}
