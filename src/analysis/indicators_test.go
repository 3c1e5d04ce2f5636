package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-dashboard/src/models"
)

func TestAddIndicators(t *testing.T) {
	closes := make([]float64, 25)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	table := makeTable("ADBE", closes...)

	AddIndicators(table)

	require.Len(t, table.SMA20, 25)
	require.Len(t, table.EMA20, 25)

	// First 19 rows are the warm-up
	for i := 0; i < 19; i++ {
		assert.True(t, math.IsNaN(table.SMA20[i]), "row %d", i)
		assert.True(t, math.IsNaN(table.EMA20[i]), "row %d", i)
	}

	// SMA over 1..20 = 10.5, then the window slides by one
	assert.InDelta(t, 10.5, table.SMA20[19], 1e-9)
	assert.InDelta(t, 11.5, table.SMA20[20], 1e-9)

	// EMA seeds on the first window's mean; on a linear ramp it then
	// climbs one full step per bar, like the SMA.
	assert.InDelta(t, 10.5, table.EMA20[19], 1e-9)
	assert.InDelta(t, 11.5, table.EMA20[20], 1e-9)
	assert.InDelta(t, 12.5, table.EMA20[21], 1e-9)
}

func TestAddIndicatorsShortHistory(t *testing.T) {
	table := makeTable("ADBE", 100, 101, 102)

	AddIndicators(table)

	require.Len(t, table.SMA20, 3)
	for i := range table.Bars {
		assert.True(t, math.IsNaN(table.SMA20[i]))
		assert.True(t, math.IsNaN(table.EMA20[i]))
	}
}

func TestAddIndicatorsEmpty(t *testing.T) {
	table := &models.MPriceTable{Symbol: "ADBE"}

	AddIndicators(table)

	assert.Empty(t, table.SMA20)
	assert.Empty(t, table.EMA20)

	assert.Nil(t, AddIndicators(nil))
}
