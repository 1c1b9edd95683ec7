package app

import (
	"context"
	"os"
	"time"

	"github.com/skillcoder/webapp-operator/internal/infra/appstate"
	"github.com/skillcoder/webapp-operator/internal/infra/pinger"
	"github.com/skillcoder/webapp-operator/internal/infra/shutdown"
)

// appstater defines the interface for application state management
type appstater interface {
	RegisterPinger(pinger pinger.Pinger) error
	RegisterShutdowner(shutdowner shutdown.Shutdowner) error
	Pinger() appstate.PingerServer
	Statuses() map[string]pinger.Status
	Quit() <-chan os.Signal
	SetStarting(ctx context.Context) error
	SetRunning(ctx context.Context) error
	GetState() appstate.State
	GetUptime() time.Duration
	GetStartTime() time.Time
	IsHealthy() bool
	IsReady() bool
	Shutdown(ctx context.Context) error
}

type signalHandler interface {
	HandleSignals(ctx context.Context, cancel func())
}

type appServer interface {
	pinger.Pinger
	Start(ctx context.Context) error
	Ready() <-chan struct{}
	shutdown.Shutdowner
}
