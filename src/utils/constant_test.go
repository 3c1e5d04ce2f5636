package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntervalForPeriod(t *testing.T) {
	expected := map[string]string{
		"1d":  "1m",
		"1wk": "30m",
		"1mo": "1d",
		"1y":  "1wk",
		"max": "1wk",
	}

	for period, interval := range expected {
		got, ok := IntervalForPeriod(period)
		assert.True(t, ok, period)
		assert.Equal(t, interval, got, period)
	}

	_, ok := IntervalForPeriod("2y")
	assert.False(t, ok)
}

func TestIsValidPeriod(t *testing.T) {
	for _, period := range Periods {
		assert.True(t, IsValidPeriod(period), period)
	}
	assert.False(t, IsValidPeriod(""))
	assert.False(t, IsValidPeriod("5d"))
}

func TestIsValidChartType(t *testing.T) {
	assert.True(t, IsValidChartType("Candlestick"))
	assert.True(t, IsValidChartType("Line"))
	assert.False(t, IsValidChartType("candlestick"))
	assert.False(t, IsValidChartType(""))
}
