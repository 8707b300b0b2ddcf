// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidID is returned when an {id} path segment is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id in URL")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrMissingSearchTitle is returned by the search route when the "title"
	// query parameter is absent. An empty value is allowed.
	ErrMissingSearchTitle = errors.New("`title` query parameter is required")

	// ErrNoUserInContext means an authenticated route was reached without
	// the auth middleware.
	ErrNoUserInContext = errors.New("no authenticated user in context")
)
