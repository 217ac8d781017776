// Package server holds the HTTP server configuration.
//
// It only defines the Config struct consumed by the Fiber application in cmd/start:
// the listen port and the API key enforced by the auth middleware.
package server
