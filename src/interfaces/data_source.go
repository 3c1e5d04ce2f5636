package interfaces

import "stock-dashboard/src/models"

// -----------------------------------------------------------------------------
// IQuoteSource interface for fetching price history from the provider.
// -----------------------------------------------------------------------------

type IQuoteSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchHistory retrieves the raw OHLCV table for a ticker over a
	// named period. The bar interval is fixed per period. A provider
	// with no data for the window returns an empty table, not an error.
	FetchHistory(ticker string, period string) (*models.MRawTable, error)
}
