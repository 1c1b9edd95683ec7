// Package dispatch routes watch events to handlers through a table keyed by
// resource kind, event type and an optional label or name filter.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// ErrShuttingDown is returned by Register once Shutdown has started.
var ErrShuttingDown = errors.New("dispatcher is shutting down")

// Handler processes one event. Returned errors are logged, never propagated.
type Handler func(ctx context.Context, ev Event) error

type binding struct {
	name    string
	trigger Trigger
	handler Handler
}

// Dispatcher runs every handler whose trigger matches an event on its own
// goroutine, so a slow handler never delays unrelated events.
type Dispatcher struct {
	logger     *slog.Logger
	mu         sync.RWMutex
	bindings   []binding
	wg         sync.WaitGroup
	inShutdown atomic.Bool
}

// New creates an empty dispatcher.
func New(logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger.With("component", "dispatcher"),
	}
}

// Register binds handler to trigger under a descriptive name used in logs.
func (d *Dispatcher) Register(name string, trigger Trigger, handler Handler) error {
	if handler == nil {
		return fmt.Errorf("register %s: handler cannot be nil", name)
	}

	if d.inShutdown.Load() {
		return fmt.Errorf("register %s: %w", name, ErrShuttingDown)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.bindings = append(d.bindings, binding{name: name, trigger: trigger, handler: handler})

	return nil
}

// Dispatch starts every matching handler and returns how many were started.
// Handlers run detached from ctx cancellation: once started they run to
// completion.
func (d *Dispatcher) Dispatch(ctx context.Context, ev Event) int {
	d.mu.RLock()

	if d.inShutdown.Load() {
		d.mu.RUnlock()
		d.logger.DebugContext(ctx, "dispatcher is shutting down, dropping event",
			"kind", ev.Kind,
			"type", ev.Type,
		)

		return 0
	}

	matched := make([]binding, 0, 1)

	for _, b := range d.bindings {
		if b.trigger.Matches(ev) {
			matched = append(matched, b)
		}
	}

	// Added under the read lock so Shutdown cannot start waiting in between.
	d.wg.Add(len(matched))
	d.mu.RUnlock()

	handlerCtx := context.WithoutCancel(ctx)

	for _, b := range matched {
		go d.run(handlerCtx, b, ev)
	}

	return len(matched)
}

func (d *Dispatcher) run(ctx context.Context, b binding, ev Event) {
	defer d.wg.Done()

	logger := d.logger.With(
		"handler", b.name,
		"kind", ev.Kind,
		"type", ev.Type,
		"name", ev.Object.GetName(),
		"namespace", ev.Object.GetNamespace(),
	)

	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "handler panicked", "reason", r)
		}
	}()

	start := time.Now()

	if err := b.handler(ctx, ev); err != nil {
		logger.ErrorContext(ctx, "handler failed", "duration", time.Since(start), "reason", err)

		return
	}

	logger.DebugContext(ctx, "handler completed", "duration", time.Since(start))
}

// Name returns the name of the component.
func (d *Dispatcher) Name() string {
	return "dispatcher"
}

// Shutdown stops accepting events and waits for in-flight handlers.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	swapped := d.inShutdown.CompareAndSwap(false, true)
	d.mu.Unlock()

	if !swapped {
		d.logger.ErrorContext(ctx, "dispatcher is already shutting down, skipping shutdown")

		return nil
	}

	done := make(chan struct{})

	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before handlers finished: %w", ctx.Err())
	case <-done:
		d.logger.InfoContext(ctx, "dispatcher drained")
	}

	return nil
}
