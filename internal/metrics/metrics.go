// Package metrics exposes the ledger's Prometheus instrumentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"energy_oracle/internal/oracle"
)

// Metrics bundles the oracle's instrumentation.
type Metrics struct {
	OperationsTotal   *prometheus.CounterVec
	OperationDuration prometheus.Histogram
	EventsAppended    prometheus.Counter
	EnergyAdmitted    prometheus.Counter
	Paused            prometheus.Gauge
}

// New constructs and registers metrics. Methods on a nil *Metrics are
// no-ops, so instrumentation stays optional in tests.
func New() *Metrics {
	m := &Metrics{
		OperationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "oracle_operations_total",
				Help: "Ledger operations by name and outcome",
			},
			[]string{"op", "outcome"},
		),
		OperationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "oracle_operation_duration_seconds",
			Help:    "Ledger operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		}),
		EventsAppended: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oracle_events_appended_total",
			Help: "Journal entries appended",
		}),
		EnergyAdmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "oracle_energy_admitted_total",
			Help: "Sum of admitted energy output values",
		}),
		Paused: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "oracle_paused",
			Help: "1 while the ledger is paused",
		}),
	}
	prometheus.MustRegister(
		m.OperationsTotal,
		m.OperationDuration,
		m.EventsAppended,
		m.EnergyAdmitted,
		m.Paused,
	)
	return m
}

// ObserveOperation records one ledger call under its outcome label: "ok", a
// rejection code name, or "internal" for storage and hard failures.
func (m *Metrics) ObserveOperation(op string, err error, seconds float64) {
	if m == nil {
		return
	}
	m.OperationsTotal.WithLabelValues(op, outcome(err)).Inc()
	m.OperationDuration.Observe(seconds)
}

func (m *Metrics) EventAppended() {
	if m == nil {
		return
	}
	m.EventsAppended.Inc()
}

func (m *Metrics) AddEnergyAdmitted(output uint64) {
	if m == nil {
		return
	}
	m.EnergyAdmitted.Add(float64(output))
}

func (m *Metrics) SetPaused(paused bool) {
	if m == nil {
		return
	}
	if paused {
		m.Paused.Set(1)
		return
	}
	m.Paused.Set(0)
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if code, ok := oracle.CodeOf(err); ok {
		return code.String()
	}
	return "internal"
}
