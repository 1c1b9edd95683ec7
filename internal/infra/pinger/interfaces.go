package pinger

import (
	"context"
	"time"
)

// Pinger defines the interface for health check pingers
type Pinger interface {
	Name() string
	Ping(ctx context.Context) error
}

// Optional, checked by type assertion on Register.
type readyCriticalPinger interface {
	PingerReadyCritical() bool
}

type timeoutPinger interface {
	PingerTimeout() time.Duration
}
