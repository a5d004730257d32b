package prometheus

import "time"

// Outcome and status label values.
const (
	OutcomeMatched     = "matched"
	OutcomeUnperceived = "unperceived"
	OutcomeFailed      = "failed"

	MoleculeStatusComplete = "complete"
	MoleculeStatusPartial  = "partial"
	MoleculeStatusFailed   = "failed"
)

// DefaultPerceptionBuckets covers a single atom perception, which is
// microseconds in the common case.
var DefaultPerceptionBuckets = []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05}

// PerceptionMetrics holds the metrics recorded by the perception service.
type PerceptionMetrics struct {
	PerceptionsTotal   CounterVec
	PerceptionDuration HistogramVec
	MoleculesTotal     CounterVec
	BatchInFlight      GaugeVec
}

// NewPerceptionMetrics registers the perception metrics with collector.
func NewPerceptionMetrics(collector MetricsCollector) *PerceptionMetrics {
	return &PerceptionMetrics{
		PerceptionsTotal: collector.RegisterCounter("perceptions_total",
			"Atom perceptions by element and outcome", "element", "outcome"),
		PerceptionDuration: collector.RegisterHistogram("perception_duration_seconds",
			"Time to perceive one atom", DefaultPerceptionBuckets, "element"),
		MoleculesTotal: collector.RegisterCounter("molecules_total",
			"Perceived molecules by status", "status"),
		BatchInFlight: collector.RegisterGauge("batch_molecules_in_flight",
			"Molecules currently being perceived by a batch"),
	}
}

// RecordPerception counts one atom perception and its latency.
func (m *PerceptionMetrics) RecordPerception(element, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.PerceptionsTotal.WithLabelValues(element, outcome).Inc()
	m.PerceptionDuration.WithLabelValues(element).Observe(d.Seconds())
}

// RecordMolecule counts one perceived molecule.
func (m *PerceptionMetrics) RecordMolecule(status string) {
	if m == nil {
		return
	}
	m.MoleculesTotal.WithLabelValues(status).Inc()
}

// BatchStarted and BatchFinished track in-flight batch molecules.
func (m *PerceptionMetrics) BatchStarted() {
	if m == nil {
		return
	}
	m.BatchInFlight.WithLabelValues().Inc()
}

func (m *PerceptionMetrics) BatchFinished() {
	if m == nil {
		return
	}
	m.BatchInFlight.WithLabelValues().Dec()
}

//Personal.AI order the ending
