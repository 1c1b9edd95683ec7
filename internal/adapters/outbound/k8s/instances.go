package k8s

import (
	"context"
	"encoding/json"
	"fmt"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

// AnnotateCommand merges annotations into the live instance with a metadata
// merge patch. Other annotations are left untouched.
func (a *adapter) AnnotateCommand(
	ctx context.Context,
	app *v1alpha1.WebApp,
	annotations map[string]string,
) error {
	patch := map[string]any{
		"metadata": map[string]any{
			"annotations": annotations,
		},
	}

	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal annotation patch: %w", err)
	}

	_, err = a.dynamic.Resource(v1alpha1.GroupVersionResource).Namespace(app.Namespace).Patch(
		ctx,
		app.Name,
		types.MergePatchType,
		patchBytes,
		metav1.PatchOptions{},
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("patch webapp annotations: %w", errInstanceNotFound)
		}

		return fmt.Errorf("patch webapp annotations: %w", err)
	}

	a.logger.DebugContext(ctx, "annotations updated", "name", app.Name, "namespace", app.Namespace)

	return nil
}

// ListInstancesQuery returns the names of all WebApp instances in the cluster.
func (a *adapter) ListInstancesQuery(ctx context.Context) ([]string, error) {
	list, err := a.dynamic.Resource(v1alpha1.GroupVersionResource).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("list webapps: %w", err)
	}

	names := make([]string, 0, len(list.Items))
	for i := range list.Items {
		names = append(names, list.Items[i].GetName())
	}

	return names, nil
}
