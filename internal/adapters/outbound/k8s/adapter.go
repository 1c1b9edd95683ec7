package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/controller"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
)

const statusSubresource = "status"

type adapter struct {
	logger     *slog.Logger
	clientset  kubernetes.Interface
	dynamic    dynamic.Interface
	extensions apiextensionsclient.Interface
}

// New creates a new K8s adapter.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
	extensions apiextensionsclient.Interface,
) controller.Repository {
	return &adapter{
		logger:     logger.With("component", "k8s-adapter"),
		clientset:  clientset,
		dynamic:    dynamicClient,
		extensions: extensions,
	}
}

var _ controller.Repository = (*adapter)(nil)

func (a *adapter) ApplyCommand(
	ctx context.Context,
	obj generator.Object,
) (controller.ApplyOutcome, error) {
	switch desired := obj.(type) {
	case *corev1.ConfigMap:
		return apply[*corev1.ConfigMap](ctx, a.clientset.CoreV1().ConfigMaps(desired.Namespace), desired, mergeConfigMap)
	case *appsv1.Deployment:
		return apply[*appsv1.Deployment](ctx, a.clientset.AppsV1().Deployments(desired.Namespace), desired, mergeDeployment)
	case *corev1.Service:
		return apply[*corev1.Service](ctx, a.clientset.CoreV1().Services(desired.Namespace), desired, mergeService)
	default:
		return "", fmt.Errorf("apply %T: %w", obj, ErrUnsupportedObject)
	}
}

func (a *adapter) UpdateStatusCommand(
	ctx context.Context,
	app *v1alpha1.WebApp,
) error {
	patch := map[string]any{
		"status": app.Status,
	}

	patchBytes, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshal status patch: %w", err)
	}

	_, err = a.dynamic.Resource(v1alpha1.GroupVersionResource).Namespace(app.Namespace).Patch(
		ctx,
		app.Name,
		types.MergePatchType,
		patchBytes,
		metav1.PatchOptions{},
		statusSubresource,
	)
	if err != nil {
		if apierrors.IsNotFound(err) {
			return fmt.Errorf("patch webapp status: %w", errInstanceNotFound)
		}

		return fmt.Errorf("patch webapp status: %w", err)
	}

	a.logger.DebugContext(ctx, "status updated",
		"name", app.Name,
		"namespace", app.Namespace,
		"phase", app.Status.Phase,
	)

	return nil
}
