package appstate_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/skillcoder/webapp-operator/internal/infra/appstate"
	"github.com/skillcoder/webapp-operator/internal/infra/pinger"
)

type stubComponent struct {
	name    string
	pingErr error
	stopped []string
	stopErr error
}

func (c *stubComponent) Name() string { return c.name }

func (c *stubComponent) Ping(context.Context) error { return c.pingErr }

func (c *stubComponent) Shutdown(context.Context) error {
	c.stopped = append(c.stopped, c.name)

	return c.stopErr
}

func newState(t *testing.T) (*appstate.AppState, *pinger.Service) {
	t.Helper()

	logger := slog.Default()
	pingerService := pinger.New(logger, 10*time.Millisecond)

	return appstate.New(logger, time.Now(), make(chan os.Signal, 1), pingerService), pingerService
}

func TestAppState_StateTransitions(t *testing.T) {
	t.Parallel()

	t.Run("init to starting", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.Equal(t, appstate.StateStarting, s.GetState())
	})

	t.Run("starting to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.Equal(t, appstate.StateRunning, s.GetState())
	})

	t.Run("running to terminating", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.SetTerminating(t.Context()))
		require.Equal(t, appstate.StateTerminating, s.GetState())
	})

	t.Run("invalid: init to running", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		err := s.SetRunning(t.Context())
		require.ErrorIs(t, err, appstate.ErrInvalidStateTransition)
		require.Equal(t, appstate.StateInit, s.GetState())
	})

	t.Run("invalid: terminated cannot change", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))
		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		require.Error(t, s.SetStarting(t.Context()))
		require.ErrorIs(t, s.SetTerminating(t.Context()), appstate.ErrAlreadyTerminated)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})
}

func TestAppState_QueryMethods(t *testing.T) {
	t.Parallel()

	startTime := time.Now()
	pingerService := pinger.New(slog.Default(), time.Second)
	s := appstate.New(slog.Default(), startTime, make(chan os.Signal, 1), pingerService)

	require.Equal(t, appstate.StateInit, s.GetState())
	require.Equal(t, startTime, s.GetStartTime())
	require.False(t, s.IsHealthy())
	require.False(t, s.IsReady())

	require.NoError(t, s.SetStarting(t.Context()))
	require.False(t, s.IsReady())

	require.NoError(t, s.SetRunning(t.Context()))
	require.True(t, s.IsHealthy())
	require.True(t, s.IsReady())
	require.Empty(t, s.Statuses())
}

func TestAppState_IsReadyFollowsPinger(t *testing.T) {
	t.Parallel()

	s, pingerService := newState(t)
	require.NoError(t, s.RegisterPinger(&stubComponent{name: "api", pingErr: errors.New("down")}))
	require.NoError(t, s.SetStarting(t.Context()))
	require.NoError(t, s.SetRunning(t.Context()))

	// No ping has run yet
	require.False(t, s.IsReady())

	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	require.NoError(t, pingerService.Start(ctx))

	select {
	case <-pingerService.Ready():
	case <-time.After(time.Second):
		t.Fatal("pinger did not become ready")
	}

	require.True(t, s.IsHealthy())
	require.False(t, s.IsReady())
	require.Equal(t, "down", s.Statuses()["api"].LastError)
}

func TestAppState_GetUptime(t *testing.T) {
	t.Parallel()

	s, _ := newState(t)

	// Small delay to ensure uptime is non-zero
	time.Sleep(10 * time.Millisecond)

	uptime := s.GetUptime()
	require.Greater(t, uptime, time.Duration(0))
	require.Less(t, uptime, time.Second)
}

func TestAppState_Shutdown(t *testing.T) {
	t.Parallel()

	t.Run("reverse order and idempotent", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)

		var order []string

		first := &stubComponent{name: "first"}
		second := &stubComponent{name: "second"}

		require.NoError(t, s.RegisterShutdowner(first))
		require.NoError(t, s.RegisterShutdowner(second))
		require.NoError(t, s.SetStarting(t.Context()))
		require.NoError(t, s.SetRunning(t.Context()))

		require.NoError(t, s.Shutdown(t.Context()))
		require.Equal(t, appstate.StateTerminated, s.GetState())

		order = append(order, second.stopped...)
		order = append(order, first.stopped...)
		require.Equal(t, []string{"second", "first"}, order)

		// Shutdown again should be idempotent
		require.NoError(t, s.Shutdown(t.Context()))
		require.Len(t, first.stopped, 1)
	})

	t.Run("component error still terminates", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		giveErr := errors.New("boom")

		require.NoError(t, s.RegisterShutdowner(&stubComponent{name: "broken", stopErr: giveErr}))

		err := s.Shutdown(t.Context())
		require.ErrorIs(t, err, giveErr)
		require.Equal(t, appstate.StateTerminated, s.GetState())
	})

	t.Run("register after terminate fails", func(t *testing.T) {
		t.Parallel()

		s, _ := newState(t)
		require.NoError(t, s.Shutdown(t.Context()))

		err := s.RegisterShutdowner(&stubComponent{name: "late"})
		require.ErrorIs(t, err, appstate.ErrAlreadyTerminated)
	})
}
