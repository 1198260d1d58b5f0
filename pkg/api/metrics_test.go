package api

import (
	"errors"
	"testing"
	"time"

	"github.com/go-kit/kit/metrics"
	"github.com/stretchr/testify/assert"
)

type recordingCounter struct {
	labelValues []string
	value       float64
}

func (c *recordingCounter) With(labelValues ...string) metrics.Counter {
	c.labelValues = labelValues
	return c
}

func (c *recordingCounter) Add(delta float64) {
	c.value += delta
}

type recordingHistogram struct {
	labelValues  []string
	observations []float64
}

func (h *recordingHistogram) With(labelValues ...string) metrics.Histogram {
	h.labelValues = labelValues
	return h
}

func (h *recordingHistogram) Observe(value float64) {
	h.observations = append(h.observations, value)
}

func TestUpdateMetrics(t *testing.T) {

	t.Run("LabelsWithSnakeCasedFuncNameAndSuccess", func(t *testing.T) {

		counter := &recordingCounter{}
		histogram := &recordingHistogram{}

		// act
		UpdateMetrics(counter, histogram, "GetCommitStatuses", time.Now().Add(-2*time.Second), nil)

		assert.Equal(t, []string{"func", "get_commit_statuses", "outcome", "success"}, counter.labelValues)
		assert.Equal(t, float64(1), counter.value)
		assert.Equal(t, []string{"func", "get_commit_statuses", "outcome", "success"}, histogram.labelValues)
		assert.Equal(t, 1, len(histogram.observations))
		assert.True(t, histogram.observations[0] >= 2)
	})

	t.Run("LabelsFailedCallsAsError", func(t *testing.T) {

		counter := &recordingCounter{}
		histogram := &recordingHistogram{}

		// act
		UpdateMetrics(counter, histogram, "GetBuild", time.Now(), errors.New("boom"))

		assert.Equal(t, []string{"func", "get_build", "outcome", "error"}, counter.labelValues)
	})
}

func TestNewRequestCounter(t *testing.T) {

	t.Run("ReturnsSameCounterForSameSubsystem", func(t *testing.T) {

		// act
		counter := NewRequestCounter("metricstest")

		assert.Same(t, counter, NewRequestCounter("metricstest"))
		assert.Same(t, NewRequestHistogram("metricstest"), NewRequestHistogram("metricstest"))
	})
}
