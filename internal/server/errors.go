package server

import "errors"

// errNoHTTPEndpoint is returned when there is no HTTP handler or listen
// address to serve.
var errNoHTTPEndpoint = errors.New("no http handler or listen address configured")
