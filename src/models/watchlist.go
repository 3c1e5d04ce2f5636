package models

// -----------------------------------------------------------------------------
// Watchlist (sidebar quotes)
// -----------------------------------------------------------------------------

// MTickerQuote is the minimal per-symbol summary for the watchlist.
// Change baselines on the first bar's Open of the fetched day.
type MTickerQuote struct {
	Symbol    string  `json:"symbol"`
	LastPrice float64 `json:"last_price"`
	Change    float64 `json:"change"`
	PctChange float64 `json:"pct_change"`
}

// MWatchlistEntry is one row of the watchlist panel: a quote, or an
// inline error message when that symbol's refresh failed. A failure for
// one symbol never affects its siblings.
type MWatchlistEntry struct {
	Symbol string        `json:"symbol"`
	Quote  *MTickerQuote `json:"quote,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// MWatchlistState is the full panel, pushed to WebSocket clients and
// served on /api/watchlist.
type MWatchlistState struct {
	Type       string            `json:"type"` // "INITIAL" or "UPDATE"
	Entries    []MWatchlistEntry `json:"entries"`
	MarketOpen bool              `json:"market_open"`
	Timestamp  int64             `json:"timestamp"`
}

// -----------------------------------------------------------------------------

// MClientCommand is a WebSocket client message; "refresh" asks the
// server to recompute the watchlist and broadcast it.
type MClientCommand struct {
	Command string `json:"command"`
}
