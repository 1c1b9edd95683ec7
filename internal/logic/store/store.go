// Package store keeps the last validated snapshot of every live WebApp
// instance, keyed by instance name.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/infra/metrics"
)

// Store is safe for concurrent use. Writes to the same name are serialised
// and a Get issued after a Put returns observes it. The in-memory map is
// authoritative for the process; the optional Backend is written through.
type Store struct {
	logger  *slog.Logger
	backend Backend
	keys    *keyLocks

	mu      sync.RWMutex
	entries map[string][]byte
}

// New creates a store. backend may be nil for a purely in-memory store.
func New(logger *slog.Logger, backend Backend) *Store {
	return &Store{
		logger:  logger.With("component", "instance-store"),
		backend: backend,
		keys:    newKeyLocks(),
		entries: make(map[string][]byte),
	}
}

// Put overwrites the snapshot stored under name. The in-memory entry is
// updated even when persisting to the backend fails; the failure is returned
// wrapped in ErrPersist.
func (s *Store) Put(ctx context.Context, name string, app *v1alpha1.WebApp) error {
	if name == "" {
		return ErrEmptyName
	}

	data, err := Encode(app)
	if err != nil {
		return err
	}

	unlock := s.keys.lock(name)
	defer unlock()

	s.mu.Lock()
	s.entries[name] = data
	size := len(s.entries)
	s.mu.Unlock()

	metrics.SetStoreEntries(size)

	if s.backend == nil {
		return nil
	}

	if err := s.backend.SaveSnapshotCommand(ctx, name, data); err != nil {
		return fmt.Errorf("%w %s: %w", ErrPersist, name, err)
	}

	return nil
}

// Get returns a fresh copy of the snapshot stored under name, or
// ErrSnapshotNotFound.
func (s *Store) Get(_ context.Context, name string) (*v1alpha1.WebApp, error) {
	s.mu.RLock()
	data, ok := s.entries[name]
	s.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, name)
	}

	return Decode(data)
}

// Remove deletes the snapshot stored under name. Removing a missing name is
// not an error.
func (s *Store) Remove(ctx context.Context, name string) error {
	unlock := s.keys.lock(name)
	defer unlock()

	s.mu.Lock()
	delete(s.entries, name)
	size := len(s.entries)
	s.mu.Unlock()

	metrics.SetStoreEntries(size)

	if s.backend == nil {
		return nil
	}

	if err := s.backend.DeleteSnapshotCommand(ctx, name); err != nil {
		return fmt.Errorf("%w %s: %w", ErrPersist, name, err)
	}

	return nil
}

// Contains reports whether a snapshot is stored under name.
func (s *Store) Contains(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.entries[name]

	return ok
}

// Names returns the sorted names of all stored snapshots.
func (s *Store) Names() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.entries))

	for name := range s.entries {
		names = append(names, name)
	}
	s.mu.RUnlock()

	slices.Sort(names)

	return names
}

// Len returns the number of stored snapshots.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}

// Load hydrates the in-memory map from the backend. Entries that fail to
// decode are skipped and logged. Existing in-memory entries win over backend
// entries with the same name.
func (s *Store) Load(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	persisted, err := s.backend.ListSnapshotsQuery(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadSnapshot, err)
	}

	loaded := 0

	s.mu.Lock()
	for name, data := range persisted {
		if _, err := Decode(data); err != nil {
			s.logger.WarnContext(ctx, "skipping undecodable snapshot", "name", name, "reason", err)

			continue
		}

		if _, exists := s.entries[name]; exists {
			continue
		}

		s.entries[name] = data
		loaded++
	}
	size := len(s.entries)
	s.mu.Unlock()

	metrics.SetStoreEntries(size)
	s.logger.InfoContext(ctx, "snapshots loaded", "loaded", loaded, "total", size)

	return nil
}

// Name returns the name of the component.
func (s *Store) Name() string {
	return "instance-store"
}

// Ping checks that the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.backend == nil {
		return nil
	}

	if _, err := s.backend.ListSnapshotsQuery(ctx); err != nil {
		return fmt.Errorf("list snapshots: %w", err)
	}

	return nil
}

// IsNotFound reports whether err is a store miss.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrSnapshotNotFound)
}
