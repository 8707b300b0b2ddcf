package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-novel-hub/internal/utils"
	"github.com/MKhiriev/go-novel-hub/models"
)

// ErrNoSession is returned by commands that need a token when none was given.
var ErrNoSession = errors.New("no session")

// Session is the identity a command acts as: the bearer token and the id of
// the user it was issued to.
type Session struct {
	Token  string
	UserID int64
}

// NewSession builds a session from a raw token. The user id is read from the
// token subject without verifying the signature; the server verifies it on
// every call. An empty token yields an anonymous session.
func NewSession(token string) (Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, nil
	}

	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return Session{}, fmt.Errorf("malformed token: %w", err)
	}

	return Session{Token: token, UserID: userID}, nil
}

func sessionFromToken(token models.Token) Session {
	return Session{Token: token.SignedString, UserID: token.UserID}
}

// Authenticated reports whether the session carries a token.
func (s Session) Authenticated() bool {
	return s.Token != ""
}
