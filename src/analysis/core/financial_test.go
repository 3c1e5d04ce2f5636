package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	assert.Equal(t, 0.0, Mean(nil))
	assert.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
}

func TestSMASeries(t *testing.T) {
	result := SMASeries([]float64{1, 2, 3, 4, 5}, 3)

	assert.Len(t, result, 5)
	assert.True(t, math.IsNaN(result[0]))
	assert.True(t, math.IsNaN(result[1]))
	assert.InDelta(t, 2.0, result[2], 1e-9)
	assert.InDelta(t, 3.0, result[3], 1e-9)
	assert.InDelta(t, 4.0, result[4], 1e-9)
}

func TestSMASeriesShorterThanWindow(t *testing.T) {
	result := SMASeries([]float64{1, 2}, 3)

	assert.Len(t, result, 2)
	for _, v := range result {
		assert.True(t, math.IsNaN(v))
	}
}

func TestSMASeriesEmpty(t *testing.T) {
	assert.Empty(t, SMASeries(nil, 3))
}

func TestEMASeries(t *testing.T) {
	// window 3 -> k = 0.5, seeded with mean(1,2,3) = 2
	result := EMASeries([]float64{1, 2, 3, 4, 5}, 3)

	assert.True(t, math.IsNaN(result[0]))
	assert.True(t, math.IsNaN(result[1]))
	assert.InDelta(t, 2.0, result[2], 1e-9)
	assert.InDelta(t, 3.0, result[3], 1e-9)
	assert.InDelta(t, 4.0, result[4], 1e-9)
}

func TestEMASeriesEmpty(t *testing.T) {
	assert.Empty(t, EMASeries(nil, 20))
}
