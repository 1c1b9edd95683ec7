package dispatch

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Kind is the resource kind an event is about.
type Kind string

const (
	KindWebApp     Kind = "WebApp"
	KindDeployment Kind = "Deployment"
	KindService    Kind = "Service"
	KindConfigMap  Kind = "ConfigMap"
	KindDefinition Kind = "CustomResourceDefinition"
)

// EventType is what happened to the object.
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Event is a single watch notification.
type Event struct {
	Kind   Kind
	Type   EventType
	Object metav1.Object
}

// Trigger selects the events a handler is bound to. Label and Name are
// optional filters: Label requires the label key to be present with a
// non-empty value, Name requires an exact object name.
type Trigger struct {
	Kind  Kind
	Types []EventType
	Label string
	Name  string
}

// Matches reports whether ev satisfies the trigger.
func (t Trigger) Matches(ev Event) bool {
	if ev.Kind != t.Kind || ev.Object == nil {
		return false
	}

	if !t.matchesType(ev.Type) {
		return false
	}

	if t.Label != "" && ev.Object.GetLabels()[t.Label] == "" {
		return false
	}

	if t.Name != "" && ev.Object.GetName() != t.Name {
		return false
	}

	return true
}

func (t Trigger) matchesType(typ EventType) bool {
	for _, want := range t.Types {
		if want == typ {
			return true
		}
	}

	return false
}
