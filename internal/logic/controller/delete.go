package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

// DeleteCommand handles an admitted WebApp deletion: it records the deletion
// time as an annotation on the live instance and drops the stored snapshot.
// The deletion itself is never blocked, so failures are only logged.
func (s *Service) DeleteCommand(ctx context.Context, app *v1alpha1.WebApp) {
	logger := s.logger.With("controller", "DeleteCommand", "name", app.Name, "namespace", app.Namespace)

	stamp := s.now().UTC().Format(DeletionTimestampLayout)

	err := s.repo.AnnotateCommand(ctx, app, map[string]string{DeletionTimestampAnnotationKey: stamp})
	if err != nil {
		var target notFound
		if errors.As(err, &target) {
			logger.DebugContext(ctx, "instance gone before annotation")
		} else {
			logger.WarnContext(ctx, "deletion timestamp not recorded", "reason", err)
		}
	}

	s.forget(ctx, logger, app.Name)

	logger.InfoContext(ctx, "instance deleted, snapshot removed", "deletionTimestamp", stamp)
}

// ForgetCommand drops the snapshot of an instance that is gone or going away.
// Forgetting an unknown instance is a no-op.
func (s *Service) ForgetCommand(ctx context.Context, app *v1alpha1.WebApp) {
	logger := s.logger.With("controller", "ForgetCommand", "name", app.Name, "namespace", app.Namespace)

	s.forget(ctx, logger, app.Name)
}

// PruneCommand drops the snapshots of instances that no longer exist in the
// cluster and returns how many were dropped. It must run after the instance
// cache has synced so snapshots loaded at startup can be checked against the
// live set.
func (s *Service) PruneCommand(ctx context.Context) (int, error) {
	logger := s.logger.With("controller", "PruneCommand")

	// Names are taken before listing so an instance created in between is
	// never a candidate.
	names := s.store.Names()

	live, err := s.repo.ListInstancesQuery(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrListInstances, err)
	}

	alive := make(map[string]struct{}, len(live))
	for _, name := range live {
		alive[name] = struct{}{}
	}

	pruned := 0

	for _, name := range names {
		if _, ok := alive[name]; ok {
			continue
		}

		s.forget(ctx, logger.With("name", name), name)
		pruned++
	}

	logger.InfoContext(ctx, "orphaned snapshots pruned", "pruned", pruned, "live", len(live))

	return pruned, nil
}

func (s *Service) forget(ctx context.Context, logger *slog.Logger, name string) {
	if err := s.store.Remove(ctx, name); err != nil {
		logger.ErrorContext(ctx, "remove snapshot failed", "reason", err)

		return
	}

	logger.DebugContext(ctx, "snapshot removed")
}
