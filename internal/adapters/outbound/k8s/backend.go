package k8s

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/client-go/kubernetes"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
	"github.com/skillcoder/webapp-operator/internal/logic/store"
)

// storeLabelKey selects the ConfigMaps that belong to one snapshot backend.
const storeLabelKey = v1alpha1.Group + "/store"

// SnapshotBackend persists each instance snapshot in its own ConfigMap, named
// after the backend and the instance. One ConfigMap per instance keeps every
// object far below the 1 MiB object size limit regardless of how many
// instances exist.
type SnapshotBackend struct {
	logger    *slog.Logger
	clientset kubernetes.Interface
	namespace string
	name      string
}

var _ store.Backend = (*SnapshotBackend)(nil)

// NewSnapshotBackend creates a backend storing snapshots in namespace, in
// ConfigMaps prefixed with name.
func NewSnapshotBackend(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	namespace,
	name string,
) *SnapshotBackend {
	return &SnapshotBackend{
		logger:    logger.With("component", "snapshot-backend"),
		clientset: clientset,
		namespace: namespace,
		name:      name,
	}
}

// ConfigMapName returns the ConfigMap holding the snapshot of instance.
func (b *SnapshotBackend) ConfigMapName(instance string) string {
	return b.name + "-" + instance
}

func (b *SnapshotBackend) SaveSnapshotCommand(ctx context.Context, name string, data []byte) error {
	cmName := b.ConfigMapName(name)

	err := b.patchData(ctx, cmName, map[string]any{name: string(data)})
	if err == nil {
		return nil
	}

	if !apierrors.IsNotFound(err) {
		return fmt.Errorf("save snapshot: %w", err)
	}

	cm := &corev1.ConfigMap{
		ObjectMeta: metav1.ObjectMeta{
			Name:      cmName,
			Namespace: b.namespace,
			Labels: map[string]string{
				generator.LabelAppName:      "webapp-operator",
				generator.LabelAppManagedBy: generator.ManagedBy,
				storeLabelKey:               b.name,
			},
		},
		Data: map[string]string{name: string(data)},
	}

	_, err = b.clientset.CoreV1().ConfigMaps(b.namespace).Create(ctx, cm, metav1.CreateOptions{})
	if apierrors.IsAlreadyExists(err) {
		// Created concurrently; the patch now applies.
		err = b.patchData(ctx, cmName, map[string]any{name: string(data)})
	}

	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	b.logger.DebugContext(ctx, "snapshot configmap created", "namespace", b.namespace, "name", cmName)

	return nil
}

func (b *SnapshotBackend) DeleteSnapshotCommand(ctx context.Context, name string) error {
	err := b.clientset.CoreV1().ConfigMaps(b.namespace).Delete(ctx, b.ConfigMapName(name), metav1.DeleteOptions{})
	if err != nil && !apierrors.IsNotFound(err) {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	return nil
}

func (b *SnapshotBackend) ListSnapshotsQuery(ctx context.Context) (map[string][]byte, error) {
	list, err := b.clientset.CoreV1().ConfigMaps(b.namespace).List(ctx, metav1.ListOptions{
		LabelSelector: labels.SelectorFromSet(labels.Set{storeLabelKey: b.name}).String(),
	})
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}

	out := make(map[string][]byte, len(list.Items))
	for i := range list.Items {
		for name, data := range list.Items[i].Data {
			out[name] = []byte(data)
		}
	}

	return out, nil
}

func (b *SnapshotBackend) patchData(ctx context.Context, cmName string, data map[string]any) error {
	patchBytes, err := json.Marshal(map[string]any{"data": data})
	if err != nil {
		return fmt.Errorf("marshal snapshot patch: %w", err)
	}

	_, err = b.clientset.CoreV1().ConfigMaps(b.namespace).Patch(
		ctx,
		cmName,
		types.MergePatchType,
		patchBytes,
		metav1.PatchOptions{},
	)

	return err
}
