package webhook

import (
	"context"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

// instanceDeleter handles admitted WebApp deletions.
type instanceDeleter interface {
	DeleteCommand(ctx context.Context, app *v1alpha1.WebApp)
}
