package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/skillcoder/webapp-operator/internal/infra/cronparser"
	"github.com/skillcoder/webapp-operator/internal/logic/controller"
)

var (
	ErrDurationTooShort      = errors.New("duration is below minimum")
	ErrInvalidResyncSchedule = errors.New("invalid resync schedule")
)

const (
	defaultLogLevel        = "info"
	defaultLogFormat       = "json"
	defaultHTTPPort        = "8080"
	defaultMetricsPort     = "9090"
	defaultWebhookPort     = "8443"
	defaultPingerInterval  = "10s"
	defaultResyncSchedule  = "*/5 * * * *"
	defaultStoreNamespace  = "webapp-system"
	defaultStoreName       = "webapp-operator-store"
	defaultRegisterBackoff = "1s"
	defaultShutdownTimeout = "30s"
)

type Config struct {
	KubeConfig         string
	KubeMaster         string
	LogLevel           string
	LogFormat          string
	HTTPPort           string
	MetricsPort        string
	WebhookPort        string
	WebhookTLSCertFile string
	WebhookTLSKeyFile  string
	PingerInterval     time.Duration
	ResyncSchedule     string
	ResyncTZ           string
	StoreNamespace     string
	StoreName          string
	RegisterBackoff    time.Duration
	ShutdownTimeout    time.Duration
	GeneratorImage     string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		KubeConfig:         getEnvWithFallback(envKeyKubeConfig, envKeyKubeConfigFallback),
		KubeMaster:         getEnvWithFallback(envKeyKubeMaster, envKeyKubeMasterFallback),
		LogLevel:           getEnvOrDefault(envKeyLogLevel, defaultLogLevel),
		LogFormat:          getEnvOrDefault(envKeyLogFormat, defaultLogFormat),
		HTTPPort:           getEnvOrDefault(envKeyHTTPPort, defaultHTTPPort),
		MetricsPort:        getEnvOrDefault(envKeyMetricsPort, defaultMetricsPort),
		WebhookPort:        getEnvOrDefault(envKeyWebhookPort, defaultWebhookPort),
		WebhookTLSCertFile: os.Getenv(envKeyWebhookTLSCertFile),
		WebhookTLSKeyFile:  os.Getenv(envKeyWebhookTLSKeyFile),
		ResyncSchedule:     getEnvOrDefault(envKeyResyncSchedule, defaultResyncSchedule),
		ResyncTZ:           os.Getenv(envKeyResyncTZ),
		StoreNamespace:     getEnvOrDefault(envKeyStoreNamespace, defaultStoreNamespace),
		StoreName:          getEnvOrDefault(envKeyStoreName, defaultStoreName),
		GeneratorImage:     os.Getenv(envKeyGeneratorImage),
	}

	var err error

	cfg.PingerInterval, err = parseDuration(envKeyPingerInterval, defaultPingerInterval, envMinPingerInterval)
	if err != nil {
		return nil, err
	}

	cfg.RegisterBackoff, err = parseDuration(envKeyRegisterBackoff, defaultRegisterBackoff, envMinRegisterBackoff)
	if err != nil {
		return nil, err
	}

	cfg.ShutdownTimeout, err = parseDuration(envKeyShutdownTimeout, defaultShutdownTimeout, envMinShutdownTimeout)
	if err != nil {
		return nil, err
	}

	if cfg.ResyncSchedule != controller.ResyncDisabled {
		if err := cronparser.New().Validate(cfg.ResyncSchedule, cfg.ResyncTZ); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidResyncSchedule, cfg.ResyncSchedule, err)
		}
	}

	return cfg, nil
}

func parseDuration(key, defaultValue string, minimum time.Duration) (time.Duration, error) {
	raw := getEnvOrDefault(key, defaultValue)

	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}

	if d < minimum {
		return 0, fmt.Errorf("%s %s: %w (%s)", key, d, ErrDurationTooShort, minimum)
	}

	return d, nil
}

func getEnvWithFallback(key, fallbackKey string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return os.Getenv(fallbackKey)
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}
