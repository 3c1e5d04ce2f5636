package utils

// -----------------------------------------------------------------------------

// Dashboard defaults. The watchlist mirrors the fixed sidebar panel;
// the default chart query is ADBE over one day of 1-minute bars.
const (
	DefaultTicker    = "ADBE"
	DefaultPeriod    = "1d"
	DefaultUserAgent = "Mozilla/5.0"

	// IndicatorWindow is the trailing window for SMA_20 / EMA_20.
	IndicatorWindow = 20
)

var DefaultWatchlist = []string{"AAPL", "GOOGL", "AMZN", "MSFT"}

// -----------------------------------------------------------------------------

// Periods the UI can select, in display order.
var Periods = []string{"1d", "1wk", "1mo", "1y", "max"}

// ChartTypes the UI can select.
var ChartTypes = []string{"Candlestick", "Line"}

// IndicatorNames the UI can select as chart overlays.
var IndicatorNames = []string{"SMA 20", "EMA 20"}

// -----------------------------------------------------------------------------

// intervalByPeriod balances point density against provider row limits:
// intraday bars for short periods, weekly bars for long ones.
var intervalByPeriod = map[string]string{
	"1d":  "1m",
	"1wk": "30m",
	"1mo": "1d",
	"1y":  "1wk",
	"max": "1wk",
}

// IntervalForPeriod returns the fixed bar interval for a period.
// The second value is false for unknown periods.
func IntervalForPeriod(period string) (string, bool) {
	interval, ok := intervalByPeriod[period]
	return interval, ok
}

// -----------------------------------------------------------------------------

func IsValidPeriod(period string) bool {
	_, ok := intervalByPeriod[period]
	return ok
}

// -----------------------------------------------------------------------------

func IsValidChartType(chartType string) bool {
	for _, ct := range ChartTypes {
		if ct == chartType {
			return true
		}
	}
	return false
}
