package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesRoleAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "server", zerolog.InfoLevel)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry["func"], "TestNew_WritesRoleAndCaller")
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "client", zerolog.WarnLevel)

	l.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	l.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "server", zerolog.DebugLevel)

	child := l.GetChildLogger()
	child.Logger = child.With().Str("trace-id", "abc").Logger()
	ctx := child.WithContext(context.Background())

	FromContext(ctx).Info().Msg("traced")
	assert.Contains(t, buf.String(), `"trace-id":"abc"`)

	buf.Reset()
	r := httptest.NewRequest("GET", "/", nil).WithContext(ctx)
	FromRequest(r).Info().Msg("from request")
	assert.Contains(t, buf.String(), "from request")
}

func TestNop_DiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error().Msg("nothing")
	})
}
