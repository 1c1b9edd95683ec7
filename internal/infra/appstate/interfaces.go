package appstate

import (
	"context"
	"time"

	"github.com/skillcoder/webapp-operator/internal/infra/pinger"
	"github.com/skillcoder/webapp-operator/internal/infra/shutdown"
)

type statusesGetter interface {
	Statuses() map[string]pinger.Status
}

// PingerServer is the pinger service owned by the application state.
type PingerServer interface {
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
	Register(pinger pinger.Pinger) error
	IsReady() bool
	statusesGetter
}

// healthChecker is an internal interface for health checking
type healthChecker interface {
	IsHealthy() bool
}

// readyChecker is an internal interface for readiness checking
type readyChecker interface {
	IsReady() bool
}

// statusGetter is an internal interface for getting the application status
type statusGetter interface {
	statusesGetter
	GetState() State
	GetUptime() time.Duration
	GetStartTime() time.Time
}
