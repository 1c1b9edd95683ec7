package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/infra/metrics"
	"github.com/skillcoder/webapp-operator/internal/logic/store"
	"github.com/skillcoder/webapp-operator/internal/logic/validator"
)

// ReconcileCommand validates app, stores its snapshot and drives its children
// to the state implied by its spec. An instance that is being deleted only has
// its snapshot dropped. Failures are reported in the result and logged; they
// never roll back the stored snapshot and are not retried here. Periodic
// resync picks failed instances up again.
func (s *Service) ReconcileCommand(ctx context.Context, app *v1alpha1.WebApp) ReconcileResult {
	return s.reconcile(ctx, app, false)
}

func (s *Service) reconcile(ctx context.Context, app *v1alpha1.WebApp, force bool) ReconcileResult {
	logger := s.logger.With("controller", "ReconcileCommand")
	if app != nil {
		logger = logger.With("name", app.Name, "namespace", app.Namespace, "generation", app.Generation)
	}

	result := s.reconcileInstance(ctx, logger, app, force)

	metrics.RecordReconcile(string(result.Outcome))

	switch result.Outcome {
	case OutcomeSuccess:
		logger.InfoContext(ctx, "instance reconciled", "applied", result.Applied)
	case OutcomeSkipped:
		logger.DebugContext(ctx, "instance already reconciled, skipping")
	case OutcomeDeleting, OutcomeGone:
		logger.InfoContext(ctx, "instance going away, nothing applied", "outcome", result.Outcome)
	default:
		logger.ErrorContext(ctx, "reconcile failed", "outcome", result.Outcome, "reason", result.Err)
	}

	return result
}

func (s *Service) reconcileInstance(
	ctx context.Context,
	logger *slog.Logger,
	app *v1alpha1.WebApp,
	force bool,
) ReconcileResult {
	if app != nil && app.DeletionTimestamp != nil {
		s.forget(ctx, logger, app.Name)

		return ReconcileResult{Outcome: OutcomeDeleting}
	}

	if err := validator.Validate(app); err != nil {
		return ReconcileResult{Outcome: OutcomeInvalid, Err: fmt.Errorf("%w: %w", ErrInvalidInstance, err)}
	}

	if force {
		// app was read from the store; only entries still present are applied.
		if !s.store.Contains(app.Name) {
			return ReconcileResult{Outcome: OutcomeGone}
		}
	} else if result, ok := s.storeSnapshot(ctx, logger, app); !ok {
		return result
	}

	if !force && upToDate(app) {
		return ReconcileResult{Outcome: OutcomeSkipped}
	}

	applied, outcome, err := s.applyChildren(ctx, logger, app)
	if err != nil {
		s.updateStatus(ctx, logger, app, v1alpha1.PhaseFailed)

		return ReconcileResult{Outcome: outcome, Applied: applied, Err: err}
	}

	s.updateStatus(ctx, logger, app, v1alpha1.PhaseReady)

	return ReconcileResult{Outcome: OutcomeSuccess, Applied: applied}
}

func (s *Service) storeSnapshot(ctx context.Context, logger *slog.Logger, app *v1alpha1.WebApp) (ReconcileResult, bool) {
	err := s.store.Put(ctx, app.Name, app)
	if err == nil {
		return ReconcileResult{}, true
	}

	if !errors.Is(err, store.ErrPersist) {
		return ReconcileResult{Outcome: OutcomeStoreError, Err: fmt.Errorf("%w: %w", ErrStoreSnapshot, err)}, false
	}

	// The in-memory snapshot is in place; only durability is degraded.
	logger.WarnContext(ctx, "snapshot not persisted", "reason", err)

	return ReconcileResult{}, true
}

// applyChildren generates the children of app and applies them in order,
// stopping at the first failure.
func (s *Service) applyChildren(
	ctx context.Context,
	logger *slog.Logger,
	app *v1alpha1.WebApp,
) ([]ApplyOutcome, Outcome, error) {
	children, err := s.generator.Generate(app)
	if err != nil {
		return nil, OutcomeGeneratorError, fmt.Errorf("%w: %w", ErrGenerateChildren, err)
	}

	applied := make([]ApplyOutcome, 0, len(children))

	for _, child := range children {
		kind := child.GetObjectKind().GroupVersionKind().Kind

		outcome, err := s.repo.ApplyCommand(ctx, child)
		if err != nil {
			return applied, OutcomeApplyError, fmt.Errorf("%w %s %s: %w", ErrApplyChild, kind, child.GetName(), err)
		}

		logger.DebugContext(ctx, "child applied", "kind", kind, "child", child.GetName(), "outcome", outcome)

		applied = append(applied, outcome)
	}

	return applied, OutcomeSuccess, nil
}

func (s *Service) updateStatus(
	ctx context.Context,
	logger *slog.Logger,
	app *v1alpha1.WebApp,
	phase v1alpha1.Phase,
) {
	want := v1alpha1.WebAppStatus{Phase: phase, ObservedGeneration: app.Generation}
	if phase == v1alpha1.PhaseFailed {
		want.ObservedGeneration = app.Status.ObservedGeneration
	}

	if app.Status == want {
		return
	}

	updated := app.DeepCopy()
	updated.Status = want

	err := s.repo.UpdateStatusCommand(ctx, updated)
	if err != nil {
		var target notFound
		if errors.As(err, &target) {
			logger.DebugContext(ctx, "instance gone before status update")

			return
		}

		logger.WarnContext(ctx, "status update failed", "phase", phase, "reason", err)
	}
}

// upToDate reports whether the children already reflect the current generation.
func upToDate(app *v1alpha1.WebApp) bool {
	return app.Generation > 0 &&
		app.Status.Phase == v1alpha1.PhaseReady &&
		app.Status.ObservedGeneration == app.Generation
}
