package controller

import (
	"context"
	"fmt"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/dispatch"
	"github.com/skillcoder/webapp-operator/internal/logic/generator"
)

type registrar interface {
	Register(name string, trigger dispatch.Trigger, handler dispatch.Handler) error
}

// RegisterHandlers binds the controller to the dispatch table:
// WebApp create/update reconciles, WebApp deletes drop the snapshot, child
// deletes self-heal and CRD deletes re-register the definition.
func (s *Service) RegisterHandlers(d registrar) error {
	bindings := []struct {
		name    string
		trigger dispatch.Trigger
		handler dispatch.Handler
	}{
		{
			name: "reconcile-webapp",
			trigger: dispatch.Trigger{
				Kind:  dispatch.KindWebApp,
				Types: []dispatch.EventType{dispatch.EventCreated, dispatch.EventUpdated},
			},
			handler: s.handleInstance,
		},
		{
			name: "forget-webapp",
			trigger: dispatch.Trigger{
				Kind:  dispatch.KindWebApp,
				Types: []dispatch.EventType{dispatch.EventDeleted},
			},
			handler: s.handleInstanceDeleted,
		},
		{
			name:    "heal-deployment",
			trigger: childDeleted(dispatch.KindDeployment),
			handler: s.handleChildDeleted,
		},
		{
			name:    "heal-service",
			trigger: childDeleted(dispatch.KindService),
			handler: s.handleChildDeleted,
		},
		{
			name:    "heal-configmap",
			trigger: childDeleted(dispatch.KindConfigMap),
			handler: s.handleChildDeleted,
		},
		{
			name: "guard-definition",
			trigger: dispatch.Trigger{
				Kind:  dispatch.KindDefinition,
				Types: []dispatch.EventType{dispatch.EventDeleted},
				Name:  v1alpha1.DefinitionName,
			},
			handler: s.handleDefinitionDeleted,
		},
	}

	for _, b := range bindings {
		if err := d.Register(b.name, b.trigger, b.handler); err != nil {
			return fmt.Errorf("register handler: %w", err)
		}
	}

	return nil
}

func childDeleted(kind dispatch.Kind) dispatch.Trigger {
	return dispatch.Trigger{
		Kind:  kind,
		Types: []dispatch.EventType{dispatch.EventDeleted},
		Label: generator.OwnerLabelKey,
	}
}

func (s *Service) handleInstance(ctx context.Context, ev dispatch.Event) error {
	app, ok := ev.Object.(*v1alpha1.WebApp)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedObject, ev.Object)
	}

	// Failures are recorded in the result and resynced later.
	_ = s.ReconcileCommand(ctx, app)

	return nil
}

// handleInstanceDeleted also covers deletes the admission webhook never saw.
func (s *Service) handleInstanceDeleted(ctx context.Context, ev dispatch.Event) error {
	app, ok := ev.Object.(*v1alpha1.WebApp)
	if !ok {
		return fmt.Errorf("%w: %T", ErrUnexpectedObject, ev.Object)
	}

	s.ForgetCommand(ctx, app)

	return nil
}

func (s *Service) handleChildDeleted(ctx context.Context, ev dispatch.Event) error {
	_, err := s.HealCommand(ctx, string(ev.Kind), ev.Object)

	return err
}

func (s *Service) handleDefinitionDeleted(ctx context.Context, _ dispatch.Event) error {
	return s.RegisterDefinitionCommand(ctx)
}
