// Package http implements the REST transport of go-novel-hub.
//
// It exposes route wiring, request handlers, and middleware. Authentication,
// request tracing, access logging and response compression are handled in
// this package before requests are delegated to the service layer.
package http
