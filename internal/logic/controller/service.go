package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"k8s.io/apimachinery/pkg/util/wait"
)

// Options tunes the controller service.
type Options struct {
	// ResyncSchedule is a cron spec for periodic resync of every stored
	// instance. Empty or ResyncDisabled turns resync off.
	ResyncSchedule string
	// ResyncTZ is the IANA time zone the schedule is evaluated in.
	ResyncTZ string
	// RegisterBackoff is the initial delay between CRD registration retries.
	RegisterBackoff time.Duration
}

type Service struct {
	logger     *slog.Logger
	repo       Repository
	store      instanceStore
	generator  childGenerator
	scheduler  scheduler
	opts       Options
	backoff    wait.Backoff
	now        func() time.Time
	ready      chan struct{}
	doneCh     chan struct{}
	inShutdown atomic.Bool
	mu         sync.RWMutex
	lastResync time.Time
}

// New creates a new controller service.
func New(
	logger *slog.Logger,
	repo Repository,
	store instanceStore,
	generator childGenerator,
	scheduler scheduler,
	opts Options,
) *Service {
	initial := opts.RegisterBackoff
	if initial <= 0 {
		initial = defaultRegisterBackoff
	}

	return &Service{
		logger:    logger.With("component", "controller"),
		repo:      repo,
		store:     store,
		generator: generator,
		scheduler: scheduler,
		opts:      opts,
		backoff: wait.Backoff{
			Duration: initial,
			Factor:   registerBackoffFactor,
			Jitter:   registerBackoffJitter,
			Steps:    registerBackoffSteps,
			Cap:      registerBackoffCap,
		},
		now:    time.Now,
		ready:  make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) error {
	if s.inShutdown.Load() {
		s.logger.InfoContext(ctx, "controller service is shutting down, skipping start")

		return nil
	}

	go s.RunCommand(ctx)

	return nil
}

// Name returns the name of the component
func (s *Service) Name() string {
	return "webapp-controller"
}

func (s *Service) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.ready:
		return nil
	default:
		return fmt.Errorf("controller service is not ready")
	}
}

func (s *Service) Ready() <-chan struct{} {
	return s.ready
}

func (s *Service) Shutdown(ctx context.Context) error {
	if !s.inShutdown.CompareAndSwap(false, true) {
		s.logger.ErrorContext(ctx, "controller service is already shutting down, skipping shutdown")

		return nil
	}

	defer func() {
		s.logger.InfoContext(ctx, "controller service shut downed")
	}()

	s.logger.InfoContext(ctx, "shutting down controller service")

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before resync loop exited: %w", ctx.Err())
	case <-s.doneCh:
		s.logger.InfoContext(ctx, "resync loop exited")
	}

	return nil
}

// RunCommand runs the resync loop until ctx is cancelled. With resync
// disabled it only marks the service ready and waits.
func (s *Service) RunCommand(ctx context.Context) {
	defer close(s.doneCh)

	logger := s.logger.With("controller", "RunCommand")

	close(s.ready)

	if !s.resyncEnabled() {
		logger.InfoContext(ctx, "periodic resync disabled")
		<-ctx.Done()
		logger.InfoContext(ctx, "terminating resync loop")

		return
	}

	for {
		next, err := s.scheduler.NextAfter(s.opts.ResyncSchedule, s.opts.ResyncTZ, s.now())
		if err != nil {
			logger.ErrorContext(ctx, "invalid resync schedule, resync stopped", "reason", err)
			<-ctx.Done()

			return
		}

		logger.DebugContext(ctx, "next resync scheduled", "at", next)

		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			logger.InfoContext(ctx, "terminating resync loop")

			return
		case <-timer.C:
		}

		s.ResyncCommand(ctx)
	}
}

// ResyncCommand force-reconciles every stored snapshot and returns the
// results keyed by instance name.
func (s *Service) ResyncCommand(ctx context.Context) map[string]ReconcileResult {
	logger := s.logger.With("controller", "ResyncCommand")
	names := s.store.Names()
	results := make(map[string]ReconcileResult, len(names))
	failed := 0

	for _, name := range names {
		select {
		case <-ctx.Done():
			logger.InfoContext(ctx, "context done, stopping resync")

			return results
		default:
		}

		app, err := s.store.Get(ctx, name)
		if err != nil {
			// Removed since Names was taken.
			logger.DebugContext(ctx, "snapshot vanished during resync", "name", name, "reason", err)

			continue
		}

		result := s.reconcile(ctx, app, true)
		results[name] = result

		if result.Err != nil {
			failed++
		}
	}

	s.setLastResync()
	logger.InfoContext(ctx, "resync completed", "instances", len(names), "failed", failed)

	return results
}

func (s *Service) resyncEnabled() bool {
	return s.opts.ResyncSchedule != "" && s.opts.ResyncSchedule != ResyncDisabled && s.scheduler != nil
}

// LastResync returns when the last resync finished, zero if none has.
func (s *Service) LastResync() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.lastResync
}

func (s *Service) setLastResync() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastResync = s.now()
}
