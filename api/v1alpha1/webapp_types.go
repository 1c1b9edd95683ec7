package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
)

// Theme selects the colour scheme of the generated site.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Language selects the language of the generated site.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
)

// Phase is the coarse reconciliation state reported in status.
type Phase string

const (
	PhasePending Phase = "Pending"
	PhaseReady   Phase = "Ready"
	PhaseFailed  Phase = "Failed"
)

// WebAppSpec defines the desired state of WebApp.
type WebAppSpec struct {
	// Theme is the colour scheme of the site, "dark" or "light".
	Theme Theme `json:"theme"`

	// Language is the language of the site, "en" or "es".
	Language Language `json:"language"`

	// Replicas is the desired number of pods serving the site.
	Replicas int32 `json:"replicas"`
}

// WebAppStatus defines the observed state of WebApp.
type WebAppStatus struct {
	// +optional
	Phase Phase `json:"phase,omitempty"`

	// ObservedGeneration is the generation last reconciled into children.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`
}

// WebApp is a themed static web site served by nginx.
type WebApp struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   WebAppSpec   `json:"spec,omitempty"`
	Status WebAppStatus `json:"status,omitempty"`
}

// DeepCopyInto copies the receiver into out.
func (in *WebApp) DeepCopyInto(out *WebApp) {
	*out = *in
	out.TypeMeta = in.TypeMeta
	in.ObjectMeta.DeepCopyInto(&out.ObjectMeta)
	out.Spec = in.Spec
	out.Status = in.Status
}

// DeepCopy returns a deep copy of the WebApp.
func (in *WebApp) DeepCopy() *WebApp {
	if in == nil {
		return nil
	}

	out := new(WebApp)
	in.DeepCopyInto(out)

	return out
}

// DeepCopyObject implements runtime.Object.
func (in *WebApp) DeepCopyObject() runtime.Object {
	return in.DeepCopy()
}

var _ runtime.Object = (*WebApp)(nil)
