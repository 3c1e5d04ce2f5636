package models

import "time"

// -----------------------------------------------------------------------------
// Canonical price table produced by the Normalizer
// -----------------------------------------------------------------------------

// MPriceBar is one row of the canonical table. All cells are scalars;
// Datetime carries the exchange-local (US Eastern) zone.
type MPriceBar struct {
	Datetime time.Time `json:"datetime"`
	Open     float64   `json:"open"`
	High     float64   `json:"high"`
	Low      float64   `json:"low"`
	Close    float64   `json:"close"`
	Volume   int64     `json:"volume"`
}

// MPriceTable is the canonical table: bars strictly ascending by
// Datetime, plus the indicator columns appended by the IndicatorEngine.
// Indicator slices are nil until AddIndicators runs; afterwards they are
// aligned to Bars with NaN marking rows where the value is undefined.
type MPriceTable struct {
	Symbol string      `json:"symbol"`
	Bars   []MPriceBar `json:"bars"`
	SMA20  []float64   `json:"-"`
	EMA20  []float64   `json:"-"`
}

// -----------------------------------------------------------------------------

func (t *MPriceTable) IsEmpty() bool {
	return t == nil || len(t.Bars) == 0
}

// -----------------------------------------------------------------------------

// Closes extracts the Close column in row order.
func (t *MPriceTable) Closes() []float64 {
	closes := make([]float64, len(t.Bars))
	for i, b := range t.Bars {
		closes[i] = b.Close
	}
	return closes
}

// -----------------------------------------------------------------------------

// MSummaryMetrics is the scalar summary derived from exactly one price
// table. Change is measured across the fetched window: last close vs the
// first close of the window, not the previous session's close.
type MSummaryMetrics struct {
	LastClose   float64 `json:"last_close"`
	PrevClose   float64 `json:"prev_close"`
	Change      float64 `json:"change"`
	PctChange   float64 `json:"pct_change"`
	High        float64 `json:"high"`
	Low         float64 `json:"low"`
	VolumeTotal int64   `json:"volume_total"`
}
