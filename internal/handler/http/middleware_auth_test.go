package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/service"
	"github.com/MKhiriev/go-novel-hub/internal/utils"
	"github.com/MKhiriev/go-novel-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth(t *testing.T) {
	h := NewHandler(&service.Services{AuthService: &mockAuthService{}}, 0, logger.Nop())

	tests := []struct {
		name       string
		header     string
		target     string
		wantStatus int
		wantUserID int64
	}{
		{name: "bearer header", header: "Bearer token-1", target: "/", wantStatus: http.StatusOK, wantUserID: 1},
		{name: "query parameter", target: "/?token=token-2", wantStatus: http.StatusOK, wantUserID: 2},
		{name: "header wins over query", header: "Bearer token-1", target: "/?token=token-2", wantStatus: http.StatusOK, wantUserID: 1},
		{name: "malformed header", header: "Basic abc", target: "/", wantStatus: http.StatusUnauthorized},
		{name: "no token", target: "/", wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer forged", target: "/", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int64
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				id, ok := utils.GetUserIDFromContext(r.Context())
				require.True(t, ok)
				gotUserID = id
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestAuth_ExpiredToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(context.Context, string) (models.Token, error) {
			return models.Token{}, service.ErrTokenExpired
		},
	}
	h := NewHandler(&service.Services{AuthService: auth}, 0, logger.Nop())
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer old")
	rr := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Body.String(), service.ErrTokenExpired.Error())
}
