package models

// -----------------------------------------------------------------------------
// Provider-shaped data, before normalization
// -----------------------------------------------------------------------------

// MRawTable is the fetch output exactly as the provider structured it:
// parallel arrays indexed by timestamp, with one or more quote groups.
// More than one group means the provider nested the OHLCV fields under a
// symbol label (the grouped-column quirk the Normalizer collapses).
type MRawTable struct {
	Symbol     string           `json:"symbol"`
	Currency   string           `json:"currency"`
	ExchangeTZ string           `json:"exchange_tz"` // IANA name; "" means unknown
	Timestamps []int64          `json:"timestamps"`  // unix seconds
	Groups     []MRawQuoteGroup `json:"groups"`
}

// MRawQuoteGroup holds the raw OHLCV arrays for one column group.
// Pointers preserve the provider's nulls (halted minutes, holidays).
type MRawQuoteGroup struct {
	Symbol string     `json:"symbol"` // "" when the group is not symbol-labeled
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

// -----------------------------------------------------------------------------

// IsEmpty reports whether the provider returned zero rows. An empty raw
// table is a valid "no data" state, not an error.
func (t *MRawTable) IsEmpty() bool {
	return t == nil || len(t.Timestamps) == 0
}
