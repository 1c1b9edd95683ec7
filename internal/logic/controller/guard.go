package controller

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/skillcoder/webapp-operator/internal/infra/metrics"
)

// RegisterDefinitionCommand registers the WebApp CRD, retrying with
// exponential backoff until it succeeds, the retry budget is spent or ctx is
// done. Used at startup and whenever the CRD is deleted.
func (s *Service) RegisterDefinitionCommand(ctx context.Context) error {
	logger := s.logger.With("controller", "RegisterDefinitionCommand")
	attempt := 0

	err := wait.ExponentialBackoffWithContext(ctx, s.backoff, func(ctx context.Context) (bool, error) {
		attempt++

		if err := s.repo.RegisterDefinitionCommand(ctx); err != nil {
			metrics.RecordDefinitionRegistration("failure")
			logger.WarnContext(ctx, "definition registration failed, retrying", "attempt", attempt, "reason", err)

			return false, nil
		}

		metrics.RecordDefinitionRegistration("success")

		return true, nil
	})
	if err != nil {
		return fmt.Errorf("%w after %d attempts: %w", ErrRegisterDefinition, attempt, err)
	}

	logger.InfoContext(ctx, "definition registered", "attempts", attempt)

	return nil
}
