package controller

import (
	"context"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/webapp-operator/internal/infra/metrics"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
	"github.com/skillcoder/webapp-operator/internal/logic/store"
)

// HealCommand reacts to the deletion of a generated child of the given kind.
// The owner label is resolved to a stored snapshot and every child of that
// snapshot is applied again; siblings that still match are left untouched.
// A missing snapshot means the owner is gone and nothing is recreated.
func (s *Service) HealCommand(ctx context.Context, kind string, child metav1.Object) (HealOutcome, error) {
	logger := s.logger.With(
		"controller", "HealCommand",
		"kind", kind,
		"child", child.GetName(),
		"namespace", child.GetNamespace(),
	)

	outcome, err := s.heal(ctx, child)

	metrics.RecordSelfHeal(kind, string(outcome))

	switch outcome {
	case HealRecreated:
		logger.InfoContext(ctx, "child recreated from snapshot")
	case HealNoSnapshot, HealNoOwner:
		logger.DebugContext(ctx, "nothing to recreate", "outcome", outcome)
	case HealFailed:
		logger.ErrorContext(ctx, "self-heal failed", "reason", err)
	}

	return outcome, err
}

func (s *Service) heal(ctx context.Context, child metav1.Object) (HealOutcome, error) {
	owner := child.GetLabels()[generator.OwnerLabelKey]
	if owner == "" {
		return HealNoOwner, nil
	}

	app, err := s.store.Get(ctx, owner)
	if err != nil {
		if store.IsNotFound(err) {
			return HealNoSnapshot, nil
		}

		return HealFailed, fmt.Errorf("get snapshot %s: %w", owner, err)
	}

	logger := s.logger.With("controller", "HealCommand", "owner", owner)

	if _, _, err := s.applyChildren(ctx, logger, app); err != nil {
		return HealFailed, err
	}

	return HealRecreated, nil
}
