package config

import "time"

// Env key constants. All operator configuration env vars use WEBAPP_ prefix;
// duration values support explicit units (e.g. 5m, 40s, 2h).

// Path to kubeconfig file. If unset, KUBECONFIG is used as fallback.
const envKeyKubeConfig = "WEBAPP_KUBECONFIG"

// Kubernetes API server URL. If unset, KUBERNETES_MASTER is used as fallback.
const envKeyKubeMaster = "WEBAPP_KUBE_MASTER"

// Log level: debug, info, warn, error.
const envKeyLogLevel = "WEBAPP_LOG_LEVEL"

// Log format: json or text.
const envKeyLogFormat = "WEBAPP_LOG_FORMAT"

// Port for health/readiness HTTP server.
const envKeyHTTPPort = "WEBAPP_HTTP_PORT"

// Port for Prometheus metrics (GET /metrics).
const envKeyMetricsPort = "WEBAPP_METRICS_PORT"

// Port for the HTTPS admission webhook server.
const envKeyWebhookPort = "WEBAPP_WEBHOOK_PORT"

// PEM certificate and key served by the admission webhook.
const (
	envKeyWebhookTLSCertFile = "WEBAPP_WEBHOOK_TLS_CERT_FILE"
	envKeyWebhookTLSKeyFile  = "WEBAPP_WEBHOOK_TLS_KEY_FILE"
)

// Pinger check interval. Units: s, m, h (e.g. 10s, 1m).
const (
	envKeyPingerInterval = "WEBAPP_PINGER_INTERVAL"
	envMinPingerInterval = time.Second
)

// Cron schedule of the periodic resync of stored instances; "off" disables it.
const envKeyResyncSchedule = "WEBAPP_RESYNC_SCHEDULE"

// Time zone the resync schedule is evaluated in (IANA, e.g. Europe/Madrid).
const envKeyResyncTZ = "WEBAPP_RESYNC_TZ"

// Namespace and name of the ConfigMap persisting instance snapshots.
const (
	envKeyStoreNamespace = "WEBAPP_STORE_NAMESPACE"
	envKeyStoreName      = "WEBAPP_STORE_NAME"
)

// Initial delay between CRD registration retries. Units: ms, s, m.
const (
	envKeyRegisterBackoff = "WEBAPP_REGISTER_BACKOFF"
	envMinRegisterBackoff = 100 * time.Millisecond
)

// Budget for draining in-flight handlers and stopping components on exit.
const (
	envKeyShutdownTimeout = "WEBAPP_SHUTDOWN_TIMEOUT"
	envMinShutdownTimeout = time.Second
)

// Container image serving the generated site.
const envKeyGeneratorImage = "WEBAPP_GENERATOR_IMAGE"

// Standard k8s env keys used as fallback when WEBAPP_* are unset.
const (
	envKeyKubeConfigFallback = "KUBECONFIG"
	envKeyKubeMasterFallback = "KUBERNETES_MASTER"
)
