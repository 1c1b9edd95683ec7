package k8s

import "errors"

var (
	ErrUnsupportedObject = errors.New("unsupported object type")
	ErrDefinitionName    = errors.New("definition manifest has unexpected name")
)

// NotFoundError represents a "not found" case that is not an error.
type NotFoundError struct {
	Kind string
}

func (e *NotFoundError) Error() string {
	return e.Kind + " not found"
}

func (e *NotFoundError) IsNotFound() {}

var errInstanceNotFound = &NotFoundError{Kind: "webapp"}
