// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
)

func TestWithLogging(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "test", zerolog.DebugLevel)

	h := &Handler{}
	handler := h.withLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		io.WriteString(w, "short")
	}))

	req := httptest.NewRequest(http.MethodGet, "/novels/?token=secret", nil)
	req = req.WithContext(log.WithContext(req.Context()))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "/novels/", entry["uri"])
	assert.Equal(t, http.MethodGet, entry["method"])
	assert.EqualValues(t, http.StatusTeapot, entry["status"])
	assert.EqualValues(t, 5, entry["size"])
	assert.NotContains(t, buf.String(), "secret")
}

func TestResponseWriter(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rr}

	n, err := w.Write([]byte("abc"))
	require.NoError(t, err)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("de"))

	assert.Equal(t, 3, n)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 5, w.size)
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(0))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusForbidden))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}
