package prometheus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPerceptionMetrics_RecordAndScrape(t *testing.T) {
	c := newTestCollector(t)
	m := NewPerceptionMetrics(c)

	m.RecordPerception("C", OutcomeMatched, 50*time.Microsecond)
	m.RecordPerception("C", OutcomeMatched, 20*time.Microsecond)
	m.RecordPerception("N", OutcomeUnperceived, time.Microsecond)
	m.RecordMolecule(MoleculeStatusComplete)
	m.BatchStarted()
	m.BatchStarted()
	m.BatchFinished()

	out := scrapeMetrics(t, c)
	assert.Contains(t, out, `test_unit_perceptions_total{element="C",outcome="matched"} 2`)
	assert.Contains(t, out, `test_unit_perceptions_total{element="N",outcome="unperceived"} 1`)
	assert.Contains(t, out, `test_unit_perception_duration_seconds_count{element="C"} 2`)
	assert.Contains(t, out, `test_unit_molecules_total{status="complete"} 1`)
	assert.Contains(t, out, "test_unit_batch_molecules_in_flight 1")
}

func TestPerceptionMetrics_NilSafe(t *testing.T) {
	var m *PerceptionMetrics
	assert.NotPanics(t, func() {
		m.RecordPerception("C", OutcomeFailed, time.Millisecond)
		m.RecordMolecule(MoleculeStatusFailed)
		m.BatchStarted()
		m.BatchFinished()
	})
}

func TestNewPerceptionMetrics_NoopCollector(t *testing.T) {
	m := NewPerceptionMetrics(NewNoopCollector())
	assert.NotPanics(t, func() {
		m.RecordPerception("C", OutcomeMatched, time.Millisecond)
	})
}
