package http

import (
	"net/http"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/utils"
)

// tokenQueryParam is the query parameter that may carry the token instead of
// the "Authorization" header.
const tokenQueryParam = "token"

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The token is taken from the "Authorization: Bearer <token>" header or,
// when the header is absent, from the "token" query parameter. On success
// the user id is stored in the request context under [utils.UserIDCtxKey].
//
// Requests are rejected with HTTP 401 when no token is supplied, the header
// is malformed, or the token is expired or invalid.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenString, err := tokenFromRequest(r)
		if err != nil {
			writeError(w, r, err, "malformed authorization header")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			writeError(w, r, err, "token rejected")
			return
		}

		log := &logger.Logger{Logger: logger.FromRequest(r).With().Int64("user_id", token.UserID).Logger()}
		ctx = log.WithContext(utils.WithUserID(ctx, token.UserID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest returns the raw token or an empty string when the request
// carries none.
func tokenFromRequest(r *http.Request) (string, error) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		token, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			return "", ErrInvalidAuthorizationHeader
		}
		return token, nil
	}

	return r.URL.Query().Get(tokenQueryParam), nil
}
