// Package timeouts defines shared timeout constants for the portfolio
// server so the durations are discoverable in one place.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// SessionIdle is how long a visitor's page state survives without a request.
const SessionIdle = 30 * time.Minute

// SessionSweep is how often idle page state is evicted.
const SessionSweep = time.Minute
