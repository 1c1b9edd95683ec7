package controller

import (
	"time"

	"github.com/skillcoder/webapp-operator/api/v1alpha1"
)

const (
	// DeletionTimestampAnnotationKey is set on a WebApp when its delete is admitted.
	DeletionTimestampAnnotationKey = v1alpha1.Group + "/deletion-timestamp"

	// DeletionTimestampLayout is RFC 3339 in UTC with millisecond precision.
	DeletionTimestampLayout = "2006-01-02T15:04:05.000Z"

	// ResyncDisabled as the resync schedule turns periodic resync off.
	ResyncDisabled = "off"

	defaultRegisterBackoff = time.Second
	registerBackoffFactor  = 2.0
	registerBackoffJitter  = 0.1
	registerBackoffSteps   = 8
	registerBackoffCap     = time.Minute
)
