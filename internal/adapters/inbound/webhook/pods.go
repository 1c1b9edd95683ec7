package webhook

import (
	"context"
	"encoding/json"
	"fmt"

	admissionv1 "k8s.io/api/admission/v1"
	corev1 "k8s.io/api/core/v1"

	"github.com/skillcoder/webapp-operator/internal/logic/policy"
)

func decodePod(raw []byte) (*corev1.Pod, error) {
	if len(raw) == 0 {
		return nil, ErrMissingObject
	}

	pod := &corev1.Pod{}
	if err := json.Unmarshal(raw, pod); err != nil {
		return nil, fmt.Errorf("decode pod: %w", err)
	}

	return pod, nil
}

func (s *Server) mutatePod(_ context.Context, req *admissionv1.AdmissionRequest) (*admissionv1.AdmissionResponse, error) {
	pod, err := decodePod(req.Object.Raw)
	if err != nil {
		return nil, err
	}

	policy.Default(pod)

	return patched(req.Object.Raw, pod)
}

func (s *Server) validatePod(_ context.Context, req *admissionv1.AdmissionRequest) (*admissionv1.AdmissionResponse, error) {
	pod, err := decodePod(req.Object.Raw)
	if err != nil {
		return nil, err
	}

	if err := policy.Validate(pod); err != nil {
		return deny(err), nil
	}

	return allow(), nil
}
