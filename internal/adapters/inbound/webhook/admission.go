package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"gomodules.xyz/jsonpatch/v2"
	admissionv1 "k8s.io/api/admission/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/serializer"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"

	"github.com/skillcoder/webapp-operator/internal/infra/metrics"
)

var (
	scheme       = runtime.NewScheme()
	codecs       = serializer.NewCodecFactory(scheme)
	deserializer = codecs.UniversalDeserializer()
)

func init() {
	utilruntime.Must(admissionv1.AddToScheme(scheme))
}

// reviewFunc answers a single admission request. A returned error is an
// internal failure, not a denial.
type reviewFunc func(ctx context.Context, req *admissionv1.AdmissionRequest) (*admissionv1.AdmissionResponse, error)

// serve adapts fn to an HTTP handler speaking admission.k8s.io/v1.
func (s *Server) serve(webhook string, fn reviewFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		logger := s.logger.With("webhook", webhook)

		mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mediaType != contentTypeJSON {
			metrics.RecordAdmission(webhook, verdictError)
			http.Error(w, "content type must be "+contentTypeJSON, http.StatusUnsupportedMediaType)

			return
		}

		review, err := decodeReview(r.Body)
		if err != nil {
			metrics.RecordAdmission(webhook, verdictError)
			logger.ErrorContext(ctx, "failed to decode admission review", "reason", err)
			http.Error(w, err.Error(), http.StatusBadRequest)

			return
		}

		req := review.Request
		logger = logger.With(
			"uid", req.UID,
			"operation", req.Operation,
			"namespace", req.Namespace,
			"name", req.Name,
		)

		resp, err := fn(ctx, req)
		if err != nil {
			logger.ErrorContext(ctx, "admission review failed", "reason", err)
			resp = &admissionv1.AdmissionResponse{
				Allowed: false,
				Result: &metav1.Status{
					Status:  metav1.StatusFailure,
					Message: err.Error(),
					Reason:  metav1.StatusReasonBadRequest,
					Code:    http.StatusBadRequest,
				},
			}
		}

		resp.UID = req.UID
		verdict := verdictOf(resp, err)
		metrics.RecordAdmission(webhook, verdict)
		logger.DebugContext(ctx, "admission review answered", "verdict", verdict)

		s.writeReview(ctx, w, &admissionv1.AdmissionReview{
			TypeMeta: review.TypeMeta,
			Response: resp,
		})
	}
}

func decodeReview(body io.Reader) (*admissionv1.AdmissionReview, error) {
	data, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if len(data) == 0 {
		return nil, ErrEmptyBody
	}

	review := &admissionv1.AdmissionReview{}
	if _, _, err := deserializer.Decode(data, nil, review); err != nil {
		return nil, fmt.Errorf("decode admission review: %w", err)
	}

	if review.Request == nil {
		return nil, ErrMissingRequest
	}

	return review, nil
}

func (s *Server) writeReview(ctx context.Context, w http.ResponseWriter, review *admissionv1.AdmissionReview) {
	if review.APIVersion == "" {
		review.APIVersion = admissionv1.SchemeGroupVersion.String()
		review.Kind = "AdmissionReview"
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(review); err != nil {
		s.logger.ErrorContext(ctx, "failed to encode admission review", "reason", err)
	}
}

func verdictOf(resp *admissionv1.AdmissionResponse, err error) string {
	switch {
	case err != nil:
		return verdictError
	case !resp.Allowed:
		return verdictDenied
	case len(resp.Patch) > 0:
		return verdictPatched
	default:
		return verdictAllowed
	}
}

func allow() *admissionv1.AdmissionResponse {
	return &admissionv1.AdmissionResponse{Allowed: true}
}

func deny(err error) *admissionv1.AdmissionResponse {
	return &admissionv1.AdmissionResponse{
		Allowed: false,
		Result: &metav1.Status{
			Status:  metav1.StatusFailure,
			Message: err.Error(),
			Reason:  metav1.StatusReasonForbidden,
			Code:    http.StatusForbidden,
		},
	}
}

// patched allows the request with a JSON patch turning original into mutated.
// No patch is attached when nothing changed.
func patched(original []byte, mutated any) (*admissionv1.AdmissionResponse, error) {
	data, err := json.Marshal(mutated)
	if err != nil {
		return nil, fmt.Errorf("marshal mutated object: %w", err)
	}

	ops, err := jsonpatch.CreatePatch(original, data)
	if err != nil {
		return nil, fmt.Errorf("create patch: %w", err)
	}

	resp := allow()
	if len(ops) == 0 {
		return resp, nil
	}

	patch, err := json.Marshal(ops)
	if err != nil {
		return nil, fmt.Errorf("marshal patch: %w", err)
	}

	patchType := admissionv1.PatchTypeJSONPatch
	resp.Patch = patch
	resp.PatchType = &patchType

	return resp, nil
}
