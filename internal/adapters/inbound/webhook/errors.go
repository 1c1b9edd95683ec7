package webhook

import "errors"

var (
	ErrEmptyBody        = errors.New("empty request body")
	ErrMissingRequest   = errors.New("admission review has no request")
	ErrMissingObject    = errors.New("admission request has no object")
	ErrTLSNotConfigured = errors.New("tls certificate and key are required")
)
