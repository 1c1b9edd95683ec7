package webhook

import "time"

const (
	defaultPort = "8443"

	readTimeout       = 5 * time.Second
	readHeaderTimeout = 3 * time.Second
	writeTimeout      = 10 * time.Second
	idleTimeout       = 60 * time.Second
	maxHeaderBytes    = 1 << 12 // 4kb
	maxBodyBytes      = 1 << 20 // 1mb, admission reviews are far smaller

	contentTypeJSON = "application/json"

	verdictAllowed = "allowed"
	verdictDenied  = "denied"
	verdictPatched = "patched"
	verdictError   = "error"
)

// Endpoint paths registered in the webhook configurations.
const (
	PathMutatePods      = "/mutate/pods"
	PathValidatePods    = "/validate/pods"
	PathValidateWebApps = "/validate/webapps"
	PathMutateWebApps   = "/mutate/webapps"
)
