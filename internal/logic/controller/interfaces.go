package controller

import (
	"context"
	"time"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
)

// Repository is the port interface for cluster operations.
// Implementations are provided by adapters in the outbound layer.
type Repository interface {
	// AnnotateCommand merges annotations into the metadata of the live
	// instance.
	AnnotateCommand(
		ctx context.Context,
		app *v1alpha1.WebApp,
		annotations map[string]string,
	) error
	// ApplyCommand creates obj if absent and updates it if it differs from
	// the desired state.
	ApplyCommand(
		ctx context.Context,
		obj generator.Object,
	) (ApplyOutcome, error)
	// UpdateStatusCommand writes app.Status to the status subresource.
	UpdateStatusCommand(
		ctx context.Context,
		app *v1alpha1.WebApp,
	) error
	// ListInstancesQuery returns the names of all live instances across
	// namespaces.
	ListInstancesQuery(ctx context.Context) ([]string, error)
	// RegisterDefinitionCommand creates or updates the WebApp CRD.
	RegisterDefinitionCommand(ctx context.Context) error
}

// instanceStore is the subset of the instance store used by the controller.
type instanceStore interface {
	Put(ctx context.Context, name string, app *v1alpha1.WebApp) error
	Get(ctx context.Context, name string) (*v1alpha1.WebApp, error)
	Remove(ctx context.Context, name string) error
	Contains(name string) bool
	Names() []string
}

type childGenerator interface {
	Generate(app *v1alpha1.WebApp) ([]generator.Object, error)
}

type scheduler interface {
	NextAfter(spec, tz string, after time.Time) (time.Time, error)
}

// notFound is a private interface for checking "not found" errors
// without importing the adapter package.
type notFound interface {
	IsNotFound()
}
