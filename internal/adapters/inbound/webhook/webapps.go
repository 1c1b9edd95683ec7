package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	admissionv1 "k8s.io/api/admission/v1"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
	"github.com/skillcoder/webapp-operator/internal/logic/validator"
)

func decodeWebApp(raw []byte) (*v1alpha1.WebApp, error) {
	if len(raw) == 0 {
		return nil, ErrMissingObject
	}

	app := &v1alpha1.WebApp{}
	if err := json.Unmarshal(raw, app); err != nil {
		return nil, fmt.Errorf("decode webapp: %w", err)
	}

	return app, nil
}

func (s *Server) validateWebApp(_ context.Context, req *admissionv1.AdmissionRequest) (*admissionv1.AdmissionResponse, error) {
	if req.Operation != admissionv1.Create && req.Operation != admissionv1.Update {
		return allow(), nil
	}

	app, err := decodeWebApp(req.Object.Raw)
	if err != nil {
		return nil, err
	}

	// Objects in a create request may not carry their namespace yet.
	if app.Namespace == "" {
		app.Namespace = req.Namespace
	}

	if err := validator.Validate(app); err != nil {
		return deny(err), nil
	}

	return allow(), nil
}

// mutateWebApp handles deletions: the instance leaves the store and the
// deletion time is recorded on the live object. Deletes are never blocked and
// never patched, since the API server rejects patches to a DELETE.
func (s *Server) mutateWebApp(ctx context.Context, req *admissionv1.AdmissionRequest) (*admissionv1.AdmissionResponse, error) {
	if req.Operation != admissionv1.Delete {
		return allow(), nil
	}

	// Registered with sideEffects NoneOnDryRun.
	if req.DryRun != nil && *req.DryRun {
		return allow(), nil
	}

	app, err := decodeWebApp(req.OldObject.Raw)
	if err != nil {
		s.logger.WarnContext(ctx, "delete without old object, allowing", "reason", err)

		return allow(), nil
	}

	s.deleter.DeleteCommand(ctx, app)

	return allow(), nil
}
