package dispatch_test

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/skillcoder/webapp-operator/internal/logic/dispatch"
)

func newObject(name string, labels map[string]string) metav1.Object {
	return &corev1.ConfigMap{ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: "apps", Labels: labels}}
}

type matchCase struct {
	name        string
	giveTrigger dispatch.Trigger
	giveEvent   dispatch.Event
	wantMatch   bool
}

func TestTrigger_Matches(t *testing.T) {
	t.Parallel()

	deleted := []dispatch.EventType{dispatch.EventDeleted}

	tests := []matchCase{
		{
			name:        "kind and type match",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted},
			giveEvent:   dispatch.Event{Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted, Object: newObject("a", nil)},
			wantMatch:   true,
		},
		{
			name:        "other kind",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindService, Types: deleted},
			giveEvent:   dispatch.Event{Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted, Object: newObject("a", nil)},
		},
		{
			name:        "other event type",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted},
			giveEvent:   dispatch.Event{Kind: dispatch.KindConfigMap, Type: dispatch.EventUpdated, Object: newObject("a", nil)},
		},
		{
			name:        "label present",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted, Label: "owner"},
			giveEvent: dispatch.Event{
				Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted,
				Object: newObject("a", map[string]string{"owner": "web1"}),
			},
			wantMatch: true,
		},
		{
			name:        "label missing",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted, Label: "owner"},
			giveEvent:   dispatch.Event{Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted, Object: newObject("a", nil)},
		},
		{
			name:        "label empty",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted, Label: "owner"},
			giveEvent: dispatch.Event{
				Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted,
				Object: newObject("a", map[string]string{"owner": ""}),
			},
		},
		{
			name:        "name filter",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted, Name: "b"},
			giveEvent:   dispatch.Event{Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted, Object: newObject("a", nil)},
		},
		{
			name:        "nil object",
			giveTrigger: dispatch.Trigger{Kind: dispatch.KindConfigMap, Types: deleted},
			giveEvent:   dispatch.Event{Kind: dispatch.KindConfigMap, Type: dispatch.EventDeleted},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.wantMatch, tt.giveTrigger.Matches(tt.giveEvent))
		})
	}
}

func TestDispatcher_Dispatch(t *testing.T) {
	t.Parallel()

	d := dispatch.New(slog.Default())

	var (
		mu    sync.Mutex
		calls []string
	)

	record := func(name string) dispatch.Handler {
		return func(_ context.Context, _ dispatch.Event) error {
			mu.Lock()
			defer mu.Unlock()

			calls = append(calls, name)

			return nil
		}
	}

	require.NoError(t, d.Register("heal", dispatch.Trigger{
		Kind:  dispatch.KindConfigMap,
		Types: []dispatch.EventType{dispatch.EventDeleted},
		Label: "owner",
	}, record("heal")))
	require.NoError(t, d.Register("failing", dispatch.Trigger{
		Kind:  dispatch.KindConfigMap,
		Types: []dispatch.EventType{dispatch.EventDeleted},
	}, func(context.Context, dispatch.Event) error { return errors.New("boom") }))
	require.NoError(t, d.Register("other", dispatch.Trigger{
		Kind:  dispatch.KindService,
		Types: []dispatch.EventType{dispatch.EventDeleted},
	}, record("other")))

	n := d.Dispatch(t.Context(), dispatch.Event{
		Kind:   dispatch.KindConfigMap,
		Type:   dispatch.EventDeleted,
		Object: newObject("a", map[string]string{"owner": "web1"}),
	})
	require.Equal(t, 2, n)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, d.Shutdown(ctx))
	require.Equal(t, []string{"heal"}, calls)

	n = d.Dispatch(t.Context(), dispatch.Event{
		Kind:   dispatch.KindConfigMap,
		Type:   dispatch.EventDeleted,
		Object: newObject("a", map[string]string{"owner": "web1"}),
	})
	require.Zero(t, n, "events after shutdown are dropped")
}

func TestDispatcher_HandlersRunConcurrently(t *testing.T) {
	t.Parallel()

	d := dispatch.New(slog.Default())
	release := make(chan struct{})

	var finished atomic.Int32

	require.NoError(t, d.Register("slow", dispatch.Trigger{
		Kind:  dispatch.KindWebApp,
		Types: []dispatch.EventType{dispatch.EventUpdated},
	}, func(context.Context, dispatch.Event) error {
		<-release
		finished.Add(1)

		return nil
	}))
	require.NoError(t, d.Register("fast", dispatch.Trigger{
		Kind:  dispatch.KindDeployment,
		Types: []dispatch.EventType{dispatch.EventDeleted},
	}, func(context.Context, dispatch.Event) error {
		finished.Add(1)

		return nil
	}))

	d.Dispatch(t.Context(), dispatch.Event{Kind: dispatch.KindWebApp, Type: dispatch.EventUpdated, Object: newObject("a", nil)})
	d.Dispatch(t.Context(), dispatch.Event{Kind: dispatch.KindDeployment, Type: dispatch.EventDeleted, Object: newObject("b", nil)})

	require.Eventually(t, func() bool { return finished.Load() == 1 }, time.Second, 10*time.Millisecond)

	close(release)

	require.NoError(t, d.Shutdown(t.Context()))
	require.Equal(t, int32(2), finished.Load())
}

func TestDispatcher_HandlerOutlivesCancelledContext(t *testing.T) {
	t.Parallel()

	d := dispatch.New(slog.Default())
	gotErr := make(chan error, 1)

	require.NoError(t, d.Register("check", dispatch.Trigger{
		Kind:  dispatch.KindDefinition,
		Types: []dispatch.EventType{dispatch.EventDeleted},
	}, func(ctx context.Context, _ dispatch.Event) error {
		gotErr <- ctx.Err()

		return nil
	}))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	d.Dispatch(ctx, dispatch.Event{Kind: dispatch.KindDefinition, Type: dispatch.EventDeleted, Object: newObject("crd", nil)})

	require.NoError(t, <-gotErr)
	require.NoError(t, d.Shutdown(t.Context()))
}

func TestDispatcher_RegisterNilHandler(t *testing.T) {
	t.Parallel()

	d := dispatch.New(slog.Default())

	require.Error(t, d.Register("nil", dispatch.Trigger{}, nil))
}
