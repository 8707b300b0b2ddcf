// Package utils holds small helpers shared by the server and the client:
// JWT issuing and parsing, the resty client wrapper, JSON responses, the
// password pepper HMAC, trace ids and the authenticated user in a context.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return "novel-hub context key " + string(c)
}

// UserIDCtxKey holds the id of the user the request token was issued to.
var UserIDCtxKey = contextKey("userID")

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext reports the user id set by [WithUserID]. ok is false
// on routes that were not behind the auth middleware.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
