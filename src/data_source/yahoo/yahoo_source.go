package yahoo

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"
)

const chartURL = "https://query1.finance.yahoo.com/v8/finance/chart/%s"

// -----------------------------------------------------------------------------

// YahooFinanceSource fetches OHLCV history from the Yahoo Finance v8
// chart API. Stateless: every call is a fresh query.
type YahooFinanceSource struct {
	Config  *models.MConfig
	Network interfaces.INetworkManager
	Logger  *logger.Logger

	now func() time.Time
}

// -----------------------------------------------------------------------------

func NewYahooFinanceSource(cfg *models.MConfig, netMgr interfaces.INetworkManager) *YahooFinanceSource {
	return &YahooFinanceSource{
		Config:  cfg,
		Network: netMgr,
		Logger:  logger.NewLogger(cfg.LogLevel, "YahooFinanceSource"),
		now:     time.Now,
	}
}

// -----------------------------------------------------------------------------

func (s *YahooFinanceSource) Name() string {
	return "yahoo"
}

// -----------------------------------------------------------------------------

// FetchHistory fetches the raw table for one (ticker, period) query.
// The 1wk period is requested as an explicit 7-day unix window because
// the provider handles the short named range poorly; every other period
// is requested by name. The bar interval is fixed per period.
func (s *YahooFinanceSource) FetchHistory(ticker string, period string) (*models.MRawTable, error) {
	if ticker == "" {
		return nil, helpers.NewFetchError("ticker cannot be empty", nil)
	}

	interval, ok := utils.IntervalForPeriod(period)
	if !ok {
		return nil, helpers.NewFetchError(fmt.Sprintf("unknown period %q", period), nil)
	}

	params := map[string]string{
		"interval":       interval,
		"includePrePost": "false",
	}

	if period == "1wk" {
		end := s.now()
		start := end.AddDate(0, 0, -7)
		params["period1"] = strconv.FormatInt(start.Unix(), 10)
		params["period2"] = strconv.FormatInt(end.Unix(), 10)
	} else {
		params["range"] = period
	}

	url := fmt.Sprintf(chartURL, ticker)

	respBytes, err := s.Network.Get(url, params)
	if err != nil {
		return nil, helpers.NewFetchError(fmt.Sprintf("provider unreachable for %s", ticker), err)
	}

	return s.parseChartResponse(ticker, respBytes)
}

// -----------------------------------------------------------------------------

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency             string `json:"currency"`
				Symbol               string `json:"symbol"`
				ExchangeTimezoneName string `json:"exchangeTimezoneName"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`   // Pointers to handle null
					High   []*float64 `json:"high"`   // Pointers to handle null
					Low    []*float64 `json:"low"`    // Pointers to handle null
					Close  []*float64 `json:"close"`  // Pointers to handle null
					Volume []*float64 `json:"volume"` // Pointers to handle null
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// -----------------------------------------------------------------------------

// parseChartResponse maps the provider JSON onto a raw table without
// reshaping it: null bars, grouped quote blocks and timezone quirks are
// preserved for the Normalizer.
func (s *YahooFinanceSource) parseChartResponse(ticker string, data []byte) (*models.MRawTable, error) {
	var resp yahooChartResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, helpers.NewFetchError(fmt.Sprintf("bad provider response for %s", ticker), err)
	}

	if resp.Chart.Error != nil {
		return nil, helpers.NewFetchError(
			fmt.Sprintf("provider rejected query for %s: %s - %s",
				ticker, resp.Chart.Error.Code, resp.Chart.Error.Description), nil)
	}

	// No result or no timestamps is a valid "no data" state.
	if len(resp.Chart.Result) == 0 {
		s.Logger.Info("No data for %s", ticker)
		return &models.MRawTable{Symbol: ticker}, nil
	}

	result := resp.Chart.Result[0]
	table := &models.MRawTable{
		Symbol:     ticker,
		Currency:   result.Meta.Currency,
		ExchangeTZ: result.Meta.ExchangeTimezoneName,
		Timestamps: result.Timestamp,
	}

	if len(result.Timestamp) == 0 {
		s.Logger.Info("No data for %s in requested window", ticker)
		return table, nil
	}

	for _, quote := range result.Indicators.Quote {
		table.Groups = append(table.Groups, models.MRawQuoteGroup{
			Symbol: result.Meta.Symbol,
			Open:   quote.Open,
			High:   quote.High,
			Low:    quote.Low,
			Close:  quote.Close,
			Volume: quote.Volume,
		})
	}

	s.Logger.Debug("Fetched %s: %d raw rows, %d quote groups", ticker, len(table.Timestamps), len(table.Groups))

	return table, nil
}
