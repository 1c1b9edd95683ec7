package watch

import (
	"context"
	"errors"
	"fmt"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/cache"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/dispatch"
)

var errUnexpectedObject = errors.New("unexpected object type")

func (w *Watcher) handlerFor(ctx context.Context, kind dispatch.Kind) cache.ResourceEventHandlerFuncs {
	return cache.ResourceEventHandlerFuncs{
		AddFunc: func(obj any) {
			w.emit(ctx, kind, dispatch.EventCreated, obj)
		},
		UpdateFunc: func(oldObj, newObj any) {
			if sameVersion(oldObj, newObj) {
				return
			}

			w.emit(ctx, kind, dispatch.EventUpdated, newObj)
		},
		DeleteFunc: func(obj any) {
			if tombstone, ok := obj.(cache.DeletedFinalStateUnknown); ok {
				obj = tombstone.Obj
			}

			w.emit(ctx, kind, dispatch.EventDeleted, obj)
		},
	}
}

func (w *Watcher) emit(ctx context.Context, kind dispatch.Kind, typ dispatch.EventType, obj any) {
	object, err := toObject(kind, obj)
	if err != nil {
		w.logger.WarnContext(ctx, "dropping watch event", "kind", kind, "type", typ, "reason", err)

		return
	}

	started := w.dispatcher.Dispatch(ctx, dispatch.Event{Kind: kind, Type: typ, Object: object})

	w.logger.DebugContext(ctx, "watch event dispatched",
		"kind", kind,
		"type", typ,
		"name", object.GetName(),
		"namespace", object.GetNamespace(),
		"handlers", started,
	)
}

// toObject converts informer objects to what handlers expect. WebApps arrive
// unstructured and are converted to the typed API.
func toObject(kind dispatch.Kind, obj any) (metav1.Object, error) {
	if kind == dispatch.KindWebApp {
		u, ok := obj.(*unstructured.Unstructured)
		if !ok {
			return nil, fmt.Errorf("%w: %T", errUnexpectedObject, obj)
		}

		app := &v1alpha1.WebApp{}
		if err := runtime.DefaultUnstructuredConverter.FromUnstructured(u.Object, app); err != nil {
			return nil, fmt.Errorf("convert webapp: %w", err)
		}

		return app, nil
	}

	object, ok := obj.(metav1.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %T", errUnexpectedObject, obj)
	}

	return object, nil
}

// sameVersion filters informer resyncs, which replay unchanged objects.
func sameVersion(oldObj, newObj any) bool {
	oldMeta, ok := oldObj.(metav1.Object)
	if !ok {
		return false
	}

	newMeta, ok := newObj.(metav1.Object)
	if !ok {
		return false
	}

	return oldMeta.GetResourceVersion() != "" && oldMeta.GetResourceVersion() == newMeta.GetResourceVersion()
}
