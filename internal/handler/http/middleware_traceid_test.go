package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/service"
)

func TestWithTraceID(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, 0, logger.New(&buf, "test", zerolog.DebugLevel))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	t.Run("generated", func(t *testing.T) {
		buf.Reset()
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

		traceID := rr.Header().Get(traceIDHeader)
		parsed, err := uuid.Parse(traceID)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
		assert.Contains(t, buf.String(), `"trace_id":"`+traceID+`"`)
	})

	t.Run("reused from request", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(traceIDHeader, "abc-123")
		rr := httptest.NewRecorder()

		h.withTraceID(next).ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(traceIDHeader))
		assert.Contains(t, buf.String(), `"trace_id":"abc-123"`)
	})
}
