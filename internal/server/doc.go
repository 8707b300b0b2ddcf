// Package server runs the HTTP API and the gRPC health endpoint side by side.
//
// Both listeners share one signal-bound context: SIGINT, SIGTERM or SIGQUIT
// stops the health watcher and shuts both servers down.
package server
