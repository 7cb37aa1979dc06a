// Package server runs the HTTP transport and coordinates graceful shutdown
// of the server and the background workers on SIGINT, SIGTERM or SIGQUIT.
package server
