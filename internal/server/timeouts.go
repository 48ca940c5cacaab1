package server

import "time"

// HTTP server timeouts. Dashboard queries are cheap in-memory reads,
// so short limits are enough headroom.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shrink it.
var shutdownTimeout = 10 * time.Second
