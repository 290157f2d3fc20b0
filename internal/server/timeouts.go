package server

import "time"

// View assembly can fan out to several upstream feeds, so the write window is
// wider than the read window. Slow upstreams surface as 502 from the assembler
// before these fire.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout is a var so tests can shrink it.
var shutdownTimeout = 10 * time.Second
