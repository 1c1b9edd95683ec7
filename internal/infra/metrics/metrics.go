package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var admissionTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "webapp_operator_admission_total",
		Help: "Total number of admission reviews handled, by webhook and verdict.",
	},
	[]string{"webhook", "verdict"},
)

var reconcileTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "webapp_operator_reconcile_total",
		Help: "Total number of WebApp reconciliations, by result.",
	},
	[]string{"result"},
)

var selfHealTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "webapp_operator_self_heal_total",
		Help: "Total number of child deletions handled by the self-healing watchers, by child kind and result.",
	},
	[]string{"kind", "result"},
)

var definitionRegistrationsTotal = promauto.With(prometheus.DefaultRegisterer).NewCounterVec(
	prometheus.CounterOpts{
		Name: "webapp_operator_definition_registrations_total",
		Help: "Total number of WebApp CRD registration attempts, by result.",
	},
	[]string{"result"},
)

var storeEntries = promauto.With(prometheus.DefaultRegisterer).NewGauge(
	prometheus.GaugeOpts{
		Name: "webapp_operator_instance_store_entries",
		Help: "Number of WebApp snapshots held in the instance store.",
	},
)

// RecordAdmission counts one admission review answered by webhook with verdict.
func RecordAdmission(webhook, verdict string) {
	admissionTotal.WithLabelValues(webhook, verdict).Inc()
}

// RecordReconcile counts one reconciliation outcome.
func RecordReconcile(result string) {
	reconcileTotal.WithLabelValues(result).Inc()
}

// RecordSelfHeal counts one handled child deletion.
func RecordSelfHeal(kind, result string) {
	selfHealTotal.WithLabelValues(kind, result).Inc()
}

// RecordDefinitionRegistration counts one CRD registration attempt.
func RecordDefinitionRegistration(result string) {
	definitionRegistrationsTotal.WithLabelValues(result).Inc()
}

// SetStoreEntries publishes the current instance store size.
func SetStoreEntries(n int) {
	storeEntries.Set(float64(n))
}

var componentUp = promauto.With(prometheus.DefaultRegisterer).NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "webapp_operator_component_up",
		Help: "Whether the last health ping of a component succeeded (1) or failed (0).",
	},
	[]string{"component"},
)

// SetComponentUp publishes the result of the last health ping of component.
func SetComponentUp(component string, up bool) {
	value := 0.0
	if up {
		value = 1
	}

	componentUp.WithLabelValues(component).Set(value)
}
