package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	s := Summarize([]float64{5, 1, 3, 2, 4})

	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.Equal(t, 15.0, s.Sum)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 3.0, s.Median)
	assert.InDelta(t, 4.6, s.P90, 1e-9)
}

func TestSummarize_Empty(t *testing.T) {
	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestPercentile_Clamped(t *testing.T) {
	values := []float64{10, 20, 30}
	assert.Equal(t, 10.0, Percentile(values, -5))
	assert.Equal(t, 30.0, Percentile(values, 150))
	assert.Equal(t, 25.0, Percentile(values, 75))
	assert.Equal(t, 0.0, Percentile(nil, 50))
}

func TestMeanAndRound(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.5, Mean([]float64{2, 3}))
	assert.Equal(t, 2.7, Round(2.6667, 1))
	assert.Equal(t, 3.0, Round(2.96, 1))
}
