package policy

import "errors"

var (
	ErrRunAsUser    = errors.New("containers must run as a user greater than 10")
	ErrRunAsGroup   = errors.New("containers must run as a group greater than 10")
	ErrPrivileged   = errors.New("containers must not run as privileged")
	ErrRunAsNonRoot = errors.New("containers must not set runAsNonRoot")
)
