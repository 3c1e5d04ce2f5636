package models

// -----------------------------------------------------------------------------
// Chart request (from the UI shell)
// -----------------------------------------------------------------------------

// MChartRequest carries the user's sidebar selections for one refresh.
type MChartRequest struct {
	Ticker     string   `json:"ticker"`
	Period     string   `json:"period"`     // 1d, 1wk, 1mo, 1y, max
	ChartType  string   `json:"chart_type"` // "Candlestick" or "Line"
	Indicators []string `json:"indicators"` // subset of {"SMA 20", "EMA 20"}
}

// -----------------------------------------------------------------------------
// Chart payload (to the UI shell / chart sink)
// -----------------------------------------------------------------------------

// MChartSeries is one drawable series. Candlestick series fill the OHLC
// arrays; line and overlay series fill Y. Undefined points (indicator
// warm-up rows) are null, never NaN.
type MChartSeries struct {
	Name  string     `json:"name"`
	Type  string     `json:"type"` // "candlestick", "line", "scatter"
	X     []string   `json:"x"`    // formatted Datetime labels
	Open  []float64  `json:"open,omitempty"`
	High  []float64  `json:"high,omitempty"`
	Low   []float64  `json:"low,omitempty"`
	Close []float64  `json:"close,omitempty"`
	Y     []*float64 `json:"y,omitempty"`
}

// MChart is the chart object handed to the rendering sink: price series
// first, then up to two indicator overlays.
type MChart struct {
	Title      string         `json:"title"` // "{TICKER} {PERIOD} Chart"
	XAxisTitle string         `json:"xaxis_title"`
	YAxisTitle string         `json:"yaxis_title"`
	Height     int            `json:"height"`
	Series     []MChartSeries `json:"series"`
}

// -----------------------------------------------------------------------------
// Metric displays and table views
// -----------------------------------------------------------------------------

// MMetricDisplay is one formatted metric tile (pure strings).
type MMetricDisplay struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
}

// MTableView is a formatted tabular view (history or indicators).
type MTableView struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// -----------------------------------------------------------------------------

// MDashboardPayload is everything one refresh produces for the UI shell.
// NoData marks the valid empty state: the chart renders empty and the
// metric tiles are absent rather than showing zeros.
type MDashboardPayload struct {
	Ticker     string           `json:"ticker"`
	Period     string           `json:"period"`
	NoData     bool             `json:"no_data"`
	Metrics    []MMetricDisplay `json:"metrics,omitempty"`
	Chart      *MChart          `json:"chart,omitempty"`
	History    *MTableView      `json:"history,omitempty"`
	Indicators *MTableView      `json:"indicators,omitempty"`
}
