// Package watch turns informer notifications for WebApps, their children and
// the WebApp CRD into dispatch events.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	apiextensionsinformers "k8s.io/apiextensions-apiserver/pkg/client/informers/externalversions"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/dynamic/dynamicinformer"
	"k8s.io/client-go/informers"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/cache"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/dispatch"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
)

type dispatcher interface {
	Dispatch(ctx context.Context, ev dispatch.Event) int
}

type factory interface {
	Start(stopCh <-chan struct{})
	Shutdown()
}

type Watcher struct {
	logger     *slog.Logger
	clientset  kubernetes.Interface
	dynamic    dynamic.Interface
	extensions apiextensionsclient.Interface
	dispatcher dispatcher
	resync     time.Duration

	mu         sync.Mutex
	stopCh     chan struct{}
	factories  []factory
	ready      chan struct{}
	inShutdown atomic.Bool
}

// New creates a watcher. A zero resync disables informer resyncs.
func New(
	logger *slog.Logger,
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
	extensions apiextensionsclient.Interface,
	d dispatcher,
	resync time.Duration,
) *Watcher {
	return &Watcher{
		logger:     logger.With("component", "watcher"),
		clientset:  clientset,
		dynamic:    dynamicClient,
		extensions: extensions,
		dispatcher: d,
		resync:     resync,
		stopCh:     make(chan struct{}),
		ready:      make(chan struct{}),
	}
}

// Name returns the name of the component
func (w *Watcher) Name() string {
	return "watcher"
}

// Start registers the informers, starts them and closes Ready once every
// cache has synced.
func (w *Watcher) Start(ctx context.Context) error {
	if w.inShutdown.Load() {
		w.logger.InfoContext(ctx, "watcher is shutting down, skipping start")

		return nil
	}

	children := informers.NewSharedInformerFactoryWithOptions(
		w.clientset,
		w.resync,
		informers.WithTweakListOptions(func(opts *metav1.ListOptions) {
			opts.LabelSelector = generator.OwnerLabelKey
		}),
	)
	instances := dynamicinformer.NewFilteredDynamicSharedInformerFactory(w.dynamic, w.resync, metav1.NamespaceAll, nil)
	definitions := apiextensionsinformers.NewSharedInformerFactory(w.extensions, w.resync)

	sources := []struct {
		kind     dispatch.Kind
		informer cache.SharedIndexInformer
	}{
		{dispatch.KindWebApp, instances.ForResource(v1alpha1.GroupVersionResource).Informer()},
		{dispatch.KindDeployment, children.Apps().V1().Deployments().Informer()},
		{dispatch.KindService, children.Core().V1().Services().Informer()},
		{dispatch.KindConfigMap, children.Core().V1().ConfigMaps().Informer()},
		{dispatch.KindDefinition, definitions.Apiextensions().V1().CustomResourceDefinitions().Informer()},
	}

	synced := make([]cache.InformerSynced, 0, len(sources))

	for _, src := range sources {
		if _, err := src.informer.AddEventHandler(w.handlerFor(ctx, src.kind)); err != nil {
			return fmt.Errorf("add %s event handler: %w", src.kind, err)
		}

		synced = append(synced, src.informer.HasSynced)
	}

	w.mu.Lock()
	w.factories = []factory{children, instances, definitions}
	w.mu.Unlock()

	children.Start(w.stopCh)
	instances.Start(w.stopCh)
	definitions.Start(w.stopCh)

	go func() {
		if !cache.WaitForCacheSync(w.stopCh, synced...) {
			w.logger.WarnContext(ctx, "watcher stopped before caches synced")

			return
		}

		w.logger.InfoContext(ctx, "watch caches synced")
		close(w.ready)
	}()

	return nil
}

// Ready returns a channel that is closed when every informer cache has synced.
func (w *Watcher) Ready() <-chan struct{} {
	return w.ready
}

func (w *Watcher) Ping(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-w.ready:
		return nil
	default:
		return fmt.Errorf("watch caches are not synced")
	}
}

// Shutdown stops the informers and waits for their goroutines.
func (w *Watcher) Shutdown(ctx context.Context) error {
	if !w.inShutdown.CompareAndSwap(false, true) {
		w.logger.ErrorContext(ctx, "watcher is already shutting down, skipping shutdown")

		return nil
	}

	w.logger.InfoContext(ctx, "shutting down watcher")
	close(w.stopCh)

	w.mu.Lock()
	factories := w.factories
	w.mu.Unlock()

	done := make(chan struct{})

	go func() {
		defer close(done)

		for _, f := range factories {
			f.Shutdown()
		}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("shutdown context done before informers stopped: %w", ctx.Err())
	case <-done:
	}

	w.logger.InfoContext(ctx, "watcher stopped")

	return nil
}
