package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	apiextensionsclient "k8s.io/apiextensions-apiserver/pkg/client/clientset/clientset"
	"k8s.io/client-go/dynamic"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/skillcoder/webapp-operator/internal/adapters/inbound/watch"
	"github.com/skillcoder/webapp-operator/internal/adapters/inbound/webhook"
	"github.com/skillcoder/webapp-operator/internal/adapters/outbound/k8s"
	"github.com/skillcoder/webapp-operator/internal/config"
	"github.com/skillcoder/webapp-operator/internal/httpserver"
	"github.com/skillcoder/webapp-operator/internal/infra/cronparser"
	"github.com/skillcoder/webapp-operator/internal/infra/shutdown"
	"github.com/skillcoder/webapp-operator/internal/logic/controller"
	"github.com/skillcoder/webapp-operator/internal/logic/dispatch"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
	"github.com/skillcoder/webapp-operator/internal/logic/store"
)

// App wires the operator components and drives their lifecycle.
type App struct {
	logger     *slog.Logger
	appState   appstater
	signals    signalHandler
	store      *store.Store
	controller *controller.Service
	dispatcher *dispatch.Dispatcher
	// servers are started in order and shut down in reverse.
	servers []appServer
}

// New creates a new application instance with all dependencies wired.
func New(logger *slog.Logger, cfg *config.Config, appState appstater) (*App, error) {
	kubeConfig, err := clientcmd.BuildConfigFromFlags(
		cfg.KubeMaster,
		cfg.KubeConfig,
	)
	if err != nil {
		return nil, fmt.Errorf("build k8s config: %w", err)
	}

	clientset, err := kubernetes.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create clientset: %w", err)
	}

	dynamicClient, err := dynamic.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create dynamic client: %w", err)
	}

	extensions, err := apiextensionsclient.NewForConfig(kubeConfig)
	if err != nil {
		return nil, fmt.Errorf("create apiextensions clientset: %w", err)
	}

	return newApp(logger, cfg, appState, clientset, dynamicClient, extensions), nil
}

func newApp(
	logger *slog.Logger,
	cfg *config.Config,
	appState appstater,
	clientset kubernetes.Interface,
	dynamicClient dynamic.Interface,
	extensions apiextensionsclient.Interface,
) *App {
	backend := k8s.NewSnapshotBackend(logger, clientset, cfg.StoreNamespace, cfg.StoreName)
	instances := store.New(logger, backend)

	repo := k8s.New(logger, clientset, dynamicClient, extensions)
	dispatcher := dispatch.New(logger)

	controllerService := controller.New(
		logger,
		repo,
		instances,
		generator.New(cfg.GeneratorImage),
		cronparser.New(),
		controller.Options{
			ResyncSchedule:  cfg.ResyncSchedule,
			ResyncTZ:        cfg.ResyncTZ,
			RegisterBackoff: cfg.RegisterBackoff,
		},
	)

	servers := []appServer{
		httpserver.NewMetricsServer(logger, cfg.MetricsPort),
		httpserver.New(logger, appState, cfg.HTTPPort),
		controllerService,
		watch.New(logger, clientset, dynamicClient, extensions, dispatcher, 0),
	}

	if cfg.WebhookTLSCertFile != "" && cfg.WebhookTLSKeyFile != "" {
		servers = append(servers, webhook.New(logger, webhook.Config{
			Port:     cfg.WebhookPort,
			CertFile: cfg.WebhookTLSCertFile,
			KeyFile:  cfg.WebhookTLSKeyFile,
		}, controllerService))
	} else {
		logger.Warn("webhook tls is not configured, admission server disabled")
	}

	return &App{
		logger:     logger,
		appState:   appState,
		signals:    shutdown.New(logger, appState),
		store:      instances,
		controller: controllerService,
		dispatcher: dispatcher,
		servers:    servers,
	}
}

// Run starts the application and blocks until context is cancelled.
func (a *App) Run(originCtx context.Context) error {
	ctx, cancel := context.WithCancel(originCtx)
	defer cancel()

	go a.signals.HandleSignals(ctx, cancel)

	if err := a.appState.SetStarting(ctx); err != nil {
		return fmt.Errorf("set starting: %w", err)
	}

	// Shuts down whatever was registered, also on a failed start.
	defer func() {
		if err := a.appState.Shutdown(context.WithoutCancel(ctx)); err != nil {
			a.logger.ErrorContext(ctx, "shutdown failed", "reason", err)
		}
	}()

	if err := a.start(ctx); err != nil {
		return err
	}

	if err := a.appState.SetRunning(ctx); err != nil {
		return fmt.Errorf("set running: %w", err)
	}

	<-ctx.Done()

	a.logger.InfoContext(ctx, "stopping operator")

	return nil
}

func (a *App) start(ctx context.Context) error {
	if err := a.appState.RegisterShutdowner(a.dispatcher); err != nil {
		return fmt.Errorf("register shutdowner: %w", err)
	}

	if err := a.store.Load(ctx); err != nil {
		return fmt.Errorf("load instance store: %w", err)
	}

	if err := a.appState.RegisterPinger(a.store); err != nil {
		return fmt.Errorf("register store pinger: %w", err)
	}

	if err := a.controller.RegisterHandlers(a.dispatcher); err != nil {
		return fmt.Errorf("register handlers: %w", err)
	}

	if err := a.controller.RegisterDefinitionCommand(ctx); err != nil {
		return fmt.Errorf("register definition: %w", err)
	}

	readies := make([]<-chan struct{}, 0, len(a.servers)+1)

	for _, srv := range a.servers {
		if err := srv.Start(ctx); err != nil {
			return fmt.Errorf("start %s: %w", srv.Name(), err)
		}

		if err := a.appState.RegisterShutdowner(srv); err != nil {
			return fmt.Errorf("register shutdowner: %w", err)
		}

		if err := a.appState.RegisterPinger(srv); err != nil {
			return fmt.Errorf("register %s pinger: %w", srv.Name(), err)
		}

		readies = append(readies, srv.Ready())
	}

	pingerService := a.appState.Pinger()
	if err := pingerService.Start(ctx); err != nil {
		return fmt.Errorf("start pinger: %w", err)
	}

	if err := a.appState.RegisterShutdowner(pingerService); err != nil {
		return fmt.Errorf("register shutdowner: %w", err)
	}

	readies = append(readies, pingerService.Ready())

	<-allChannelsClose(ctx, a.logger, readies...)

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("wait for components: %w", err)
	}

	a.logger.InfoContext(ctx, "all components ready", "count", len(readies))

	// The watcher is ready only after the instance cache synced, so snapshots
	// loaded from the backend can now be checked against the live set.
	if _, err := a.controller.PruneCommand(ctx); err != nil {
		a.logger.WarnContext(ctx, "orphaned snapshots not pruned", "reason", err)
	}

	return nil
}

// allChannelsClose returns a channel closed once every input channel is
// closed or ctx is done.
func allChannelsClose(ctx context.Context, logger *slog.Logger, chans ...<-chan struct{}) <-chan struct{} {
	out := make(chan struct{})

	var wg sync.WaitGroup

	wg.Add(len(chans))

	for _, ch := range chans {
		go func() {
			defer wg.Done()

			select {
			case <-ch:
			case <-ctx.Done():
				logger.DebugContext(ctx, "stopped waiting for component readiness", "reason", ctx.Err())
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
