package k8s

import (
	"context"
	"fmt"
	"maps"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/equality"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/webapp-operator/internal/logic/controller"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
)

// typedClient is the part of a typed client-go resource client apply needs.
type typedClient[T generator.Object] interface {
	Get(ctx context.Context, name string, opts metav1.GetOptions) (T, error)
	Create(ctx context.Context, obj T, opts metav1.CreateOptions) (T, error)
	Update(ctx context.Context, obj T, opts metav1.UpdateOptions) (T, error)
}

// mergeFunc returns existing updated with the desired fields and whether
// anything changed. It must not modify its arguments.
type mergeFunc[T generator.Object] func(existing, desired T) (T, bool)

// apply creates desired if absent and updates it if the live object differs.
// Fields the server defaults are left alone.
func apply[T generator.Object](
	ctx context.Context,
	client typedClient[T],
	desired T,
	merge mergeFunc[T],
) (controller.ApplyOutcome, error) {
	kind := desired.GetObjectKind().GroupVersionKind().Kind

	existing, err := client.Get(ctx, desired.GetName(), metav1.GetOptions{})
	if err != nil {
		if !apierrors.IsNotFound(err) {
			return "", fmt.Errorf("get %s: %w", kind, err)
		}

		if _, err := client.Create(ctx, desired, metav1.CreateOptions{}); err != nil {
			return "", fmt.Errorf("create %s: %w", kind, err)
		}

		return controller.ApplyCreated, nil
	}

	updated, changed := merge(existing, desired)
	if !changed {
		return controller.ApplyUnchanged, nil
	}

	if _, err := client.Update(ctx, updated, metav1.UpdateOptions{}); err != nil {
		return "", fmt.Errorf("update %s: %w", kind, err)
	}

	return controller.ApplyUpdated, nil
}

func mergeConfigMap(existing, desired *corev1.ConfigMap) (*corev1.ConfigMap, bool) {
	if !metaChanged(existing, desired) && equality.Semantic.DeepEqual(existing.Data, desired.Data) {
		return existing, false
	}

	out := existing.DeepCopy()
	mergeMeta(out, desired)
	out.Data = desired.Data

	return out, true
}

func mergeDeployment(existing, desired *appsv1.Deployment) (*appsv1.Deployment, bool) {
	if !metaChanged(existing, desired) && equality.Semantic.DeepDerivative(desired.Spec, existing.Spec) {
		return existing, false
	}

	out := existing.DeepCopy()
	mergeMeta(out, desired)
	out.Spec = desired.Spec

	return out, true
}

func mergeService(existing, desired *corev1.Service) (*corev1.Service, bool) {
	if !metaChanged(existing, desired) && equality.Semantic.DeepDerivative(desired.Spec, existing.Spec) {
		return existing, false
	}

	out := existing.DeepCopy()
	mergeMeta(out, desired)
	// Cluster IPs are immutable once allocated.
	out.Spec.Type = desired.Spec.Type
	out.Spec.Selector = desired.Spec.Selector
	out.Spec.Ports = desired.Spec.Ports

	return out, true
}

// metaChanged reports whether desired labels, annotations or owner references
// are missing from existing. Extra keys on the live object are tolerated.
func metaChanged(existing, desired metav1.Object) bool {
	return !isSubset(desired.GetLabels(), existing.GetLabels()) ||
		!isSubset(desired.GetAnnotations(), existing.GetAnnotations()) ||
		!equality.Semantic.DeepDerivative(desired.GetOwnerReferences(), existing.GetOwnerReferences())
}

func mergeMeta(out, desired metav1.Object) {
	labels := out.GetLabels()
	if labels == nil {
		labels = make(map[string]string, len(desired.GetLabels()))
	}

	maps.Copy(labels, desired.GetLabels())
	out.SetLabels(labels)

	if len(desired.GetAnnotations()) > 0 {
		annotations := out.GetAnnotations()
		if annotations == nil {
			annotations = make(map[string]string, len(desired.GetAnnotations()))
		}

		maps.Copy(annotations, desired.GetAnnotations())
		out.SetAnnotations(annotations)
	}

	if len(desired.GetOwnerReferences()) > 0 {
		out.SetOwnerReferences(desired.GetOwnerReferences())
	}
}

func isSubset(sub, super map[string]string) bool {
	for k, v := range sub {
		if got, ok := super[k]; !ok || got != v {
			return false
		}
	}

	return true
}
