package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-novel-hub/internal/logger"
	"github.com/MKhiriev/go-novel-hub/internal/service"
	"github.com/MKhiriev/go-novel-hub/internal/store"
)

type errorStatus struct {
	target error
	status int
}

// errorStatuses is checked in order; the first match wins.
var errorStatuses = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidID, http.StatusBadRequest},
	{ErrMissingSearchTitle, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},

	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrNoUserInContext, http.StatusUnauthorized},
	{service.ErrWrongCredentials, http.StatusUnauthorized},
	{service.ErrTokenMissing, http.StatusUnauthorized},
	{service.ErrTokenExpired, http.StatusUnauthorized},
	{service.ErrTokenInvalid, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},
	{store.ErrNotNovelOwner, http.StatusForbidden},

	{store.ErrUserAlreadyExists, http.StatusConflict},

	{store.ErrUserNotFound, http.StatusNotFound},
	{store.ErrNovelNotFound, http.StatusNotFound},
	{store.ErrWishlistEntryNotFound, http.StatusNotFound},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the mapped status. Server-side
// failures are reported with the generic status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status := statusFromError(err)
	log := logger.FromRequest(r)

	if status == http.StatusInternalServerError {
		log.Err(err).Msg(msg)
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg(msg)
	http.Error(w, publicMessage(err), status)
}

// publicMessage returns the text of the outermost known sentinel in err.
func publicMessage(err error) string {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			if e.target == service.ErrInvalidDataProvided {
				// validation details are safe to show
				return err.Error()
			}
			return e.target.Error()
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}
