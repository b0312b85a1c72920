// Package timeouts defines shared timeout constants used by the die service,
// the oracle service, and their clients.
package timeouts

import "time"

// GRPCDial caps the wait time when dialing a gRPC peer, health check included.
const GRPCDial = 2 * time.Second

// GRPCRequest caps the time allowed for a single oracle callback delivery.
const GRPCRequest = 5 * time.Second

// Shutdown limits how long a server waits for in-flight work during
// graceful shutdown.
const Shutdown = 5 * time.Second
