package analysis

import (
	"math"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// MetricsCalculator
// -----------------------------------------------------------------------------

// Summarize reduces the canonical table to its scalar summary. The
// change is measured across the fetched window: last close against the
// window's first close. Returns ErrEmptyData for a zero-row table and
// ErrZeroBaseline when the first close is zero.
func Summarize(table *models.MPriceTable) (*models.MSummaryMetrics, error) {
	if table.IsEmpty() {
		return nil, helpers.ErrEmptyData
	}

	bars := table.Bars
	lastClose := bars[len(bars)-1].Close
	prevClose := bars[0].Close

	if prevClose == 0 {
		return nil, helpers.ErrZeroBaseline
	}

	change := lastClose - prevClose
	pctChange := change / prevClose * 100

	high := math.Inf(-1)
	low := math.Inf(1)
	var volumeTotal int64

	for _, b := range bars {
		if b.High > high {
			high = b.High
		}
		if b.Low < low {
			low = b.Low
		}
		volumeTotal += b.Volume
	}

	return &models.MSummaryMetrics{
		LastClose:   lastClose,
		PrevClose:   prevClose,
		Change:      change,
		PctChange:   pctChange,
		High:        high,
		Low:         low,
		VolumeTotal: volumeTotal,
	}, nil
}

// -----------------------------------------------------------------------------

// Quote reduces the canonical table to the minimal watchlist summary:
// last close against the first bar's Open of the fetched day.
func Quote(table *models.MPriceTable) (*models.MTickerQuote, error) {
	if table.IsEmpty() {
		return nil, helpers.ErrEmptyData
	}

	bars := table.Bars
	lastPrice := bars[len(bars)-1].Close
	openPrice := bars[0].Open

	if openPrice == 0 {
		return nil, helpers.ErrZeroBaseline
	}

	change := lastPrice - openPrice

	return &models.MTickerQuote{
		Symbol:    table.Symbol,
		LastPrice: lastPrice,
		Change:    change,
		PctChange: change / openPrice * 100,
	}, nil
}
