package pinger

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/skillcoder/webapp-operator/internal/infra/metrics"
	"github.com/skillcoder/webapp-operator/internal/infra/shutdown"
)

const (
	// defaultPingTimeout is the default timeout for ping operations
	defaultPingTimeout = 1 * time.Second
)

// Status is the health record of one registered component.
type Status struct {
	ReadyCritical       bool          `json:"readyCritical"`
	LastRun             time.Time     `json:"lastRun,omitzero"`
	LastLatency         time.Duration `json:"lastLatency"`
	LastError           string        `json:"lastError,omitempty"`
	ConsecutiveFailures int           `json:"consecutiveFailures"`
	Successes           uint64        `json:"successes"`
	Failures            uint64        `json:"failures"`
}

// Healthy reports whether the component has been pinged and its last ping succeeded.
func (s Status) Healthy() bool {
	return !s.LastRun.IsZero() && s.LastError == ""
}

type entry struct {
	pinger  Pinger
	timeout time.Duration
	status  Status
}

// Service pings registered components at a fixed interval and keeps their
// health records.
type Service struct {
	logger     *slog.Logger
	interval   time.Duration
	entries    map[string]*entry
	mu         sync.RWMutex
	ready      chan struct{}
	inShutdown atomic.Bool
	doneCh     chan struct{}
	wg         sync.WaitGroup
}

// New creates a new pinger service with the specified interval
func New(
	logger *slog.Logger,
	interval time.Duration,
) *Service {
	return &Service{
		logger:   logger.With("component", "pinger"),
		interval: interval,
		entries:  make(map[string]*entry),
		ready:    make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

var _ shutdown.Shutdowner = (*Service)(nil)

// Name returns the name of the pinger service component
func (s *Service) Name() string {
	return "pinger-service"
}

// Register adds a component to be pinged. Components are ready-critical
// unless they implement PingerReadyCritical() returning false.
func (s *Service) Register(pinger Pinger) error {
	if pinger == nil {
		return fmt.Errorf("register pinger: %w", ErrNilPinger)
	}

	name := pinger.Name()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("register pinger %s: %w", name, ErrPingerAlreadyRegistered)
	}

	readyCritical := true
	if rc, ok := pinger.(readyCriticalPinger); ok {
		readyCritical = rc.PingerReadyCritical()
	}

	timeout := defaultPingTimeout
	if tp, ok := pinger.(timeoutPinger); ok && tp.PingerTimeout() > 0 {
		timeout = tp.PingerTimeout()
	}

	s.entries[name] = &entry{
		pinger:  pinger,
		timeout: timeout,
		status:  Status{ReadyCritical: readyCritical},
	}

	s.logger.Info("pinger registered", "name", name, "readyCritical", readyCritical, "timeout", timeout)

	return nil
}

// Start starts the pinger service in a goroutine
func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "pinger service is shutting down, skipping start")

		return nil
	}

	go s.run(ctx)

	return nil
}

// Ready returns a channel that is closed after the first round of pings
func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

// Shutdown gracefully shuts down the pinger service
func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "pinger service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "pinger service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down pinger service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before pinger loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "pinger loop exited")
	}

	// In-flight pings
	s.wg.Wait()

	return nil
}

// Status returns the health record of the named component.
func (s *Service) Status(name string) (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[name]
	if !ok {
		return Status{}, fmt.Errorf("get status: %w: %s", ErrPingerNotFound, name)
	}

	return e.status, nil
}

// Statuses returns a copy of every health record keyed by component name.
func (s *Service) Statuses() map[string]Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]Status, len(s.entries))
	for name, e := range s.entries {
		out[name] = e.status
	}

	return out
}

// IsReady reports whether every ready-critical component is healthy.
func (s *Service) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entries {
		if e.status.ReadyCritical && !e.status.Healthy() {
			return false
		}
	}

	return true
}

// run is the main goroutine that runs pingers at intervals
func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("pinger", "run")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.pingAll(ctx, logger)
	close(s.ready)

	for {
		if s.inShutdown.Load() {
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}

		select {
		case <-ticker.C:
			s.pingAll(ctx, logger)
		case <-ctx.Done():
			logger.InfoContext(ctx, "terminating pinger loop")

			return
		}
	}
}

// pingAll pings every registered component in parallel and waits for them.
func (s *Service) pingAll(ctx context.Context, logger *slog.Logger) {
	s.mu.RLock()
	entries := maps.Clone(s.entries)
	s.mu.RUnlock()

	var wg sync.WaitGroup

	for name, e := range entries {
		select {
		case <-ctx.Done():
			return
		default:
		}

		wg.Add(1)
		s.wg.Add(1)

		go func() {
			defer wg.Done()
			defer s.wg.Done()

			pingCtx, cancel := context.WithTimeout(ctx, e.timeout)
			defer cancel()

			start := time.Now()
			err := e.pinger.Ping(pingCtx)
			latency := time.Since(start)

			s.record(name, latency, err)
			metrics.SetComponentUp(name, err == nil)

			if err != nil {
				logger.DebugContext(ctx, "pinger error", "name", name, "latency", latency, "reason", err)
			}
		}()
	}

	wg.Wait()
}

func (s *Service) record(name string, latency time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[name]
	if !ok {
		return
	}

	e.status.LastRun = time.Now()
	e.status.LastLatency = latency

	if err != nil {
		e.status.LastError = err.Error()
		e.status.ConsecutiveFailures++
		e.status.Failures++

		return
	}

	e.status.LastError = ""
	e.status.ConsecutiveFailures = 0
	e.status.Successes++
}
