package policy

const (
	// IgnoreAnnotationKey on a pod skips validation entirely.
	IgnoreAnnotationKey = "webapp.skillcoder.com/ignore"

	// minID is the highest user/group id still considered privileged.
	minID = 10

	defaultRequestCPU    = "100m"
	defaultRequestMemory = "128Mi"
	defaultLimitCPU      = "200m"
	defaultLimitMemory   = "256Mi"

	defaultRunAsUser  int64 = 1000
	defaultRunAsGroup int64 = 3000
)
