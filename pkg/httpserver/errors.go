package httpserver

import "errors"

var (
	// ErrStart wraps failures to listen or serve.
	ErrStart = errors.New("httpserver: failed to start")
	// ErrShutdown wraps a graceful shutdown that did not finish in time.
	ErrShutdown = errors.New("httpserver: graceful shutdown failed")
)
