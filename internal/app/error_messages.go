// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// novel hub command-line client.
//
// All Msg* constants are human-readable message strings printed to the user
// when a command fails. Keeping them in one place ensures consistent wording
// throughout the CLI.
package app

const (
	// MsgInvalidDataProvided is shown when the server rejects the request
	// body (e.g. an empty title or a malformed email).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is shown when the username/password pair does
	// not match any account.
	MsgInvalidLoginPassword = "invalid username/password"

	// MsgLoginRequired is shown when a command needs a session but no token
	// was given, or the token was rejected as expired or invalid.
	MsgLoginRequired = "login required: run `login <username>` and pass the printed token via -token or NOVEL_TOKEN"

	// MsgAccessDenied is shown when the caller tries to modify a novel or a
	// profile that belongs to a different user.
	MsgAccessDenied = "access denied: the resource belongs to another user"

	// MsgNotFound is shown when the user, novel or wishlist entry does not
	// exist.
	MsgNotFound = "not found"

	// MsgAlreadyExists is shown when registration or a profile update hits a
	// username or email that is already taken.
	MsgAlreadyExists = "username or email already exists"

	// MsgInternalServerError is shown for unexpected server-side failures.
	MsgInternalServerError = "internal server error"

	// MsgServerUnavailable is shown when the server cannot be reached.
	MsgServerUnavailable = "server is unavailable"
)
