package dashboard

import (
	"fmt"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/monitor"
	"stock-dashboard/src/presentation"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------

// Service runs the refresh pipeline: fetch, normalize, indicators,
// metrics, presentation. Stateless between refreshes; each call is a
// complete synchronous run.
type Service struct {
	Config   *models.MConfig
	Source   interfaces.IQuoteSource
	Calendar *utils.TradingCalendar
	Monitor  *monitor.Monitor
	Logger   *logger.Logger
}

// -----------------------------------------------------------------------------

func NewService(cfg *models.MConfig, source interfaces.IQuoteSource, cal *utils.TradingCalendar, mon *monitor.Monitor) *Service {
	return &Service{
		Config:   cfg,
		Source:   source,
		Calendar: cal,
		Monitor:  mon,
		Logger:   logger.NewLogger(cfg.LogLevel, "DashboardService"),
	}
}

// -----------------------------------------------------------------------------

// validateRequest checks the sidebar selections. Ticker is free text
// beyond non-empty; period and chart type come from fixed lists.
func validateRequest(req *models.MChartRequest) error {
	if req.Ticker == "" {
		return fmt.Errorf("ticker cannot be empty")
	}
	if !utils.IsValidPeriod(req.Period) {
		return fmt.Errorf("invalid period: %s", req.Period)
	}
	if req.ChartType == "" {
		req.ChartType = "Candlestick"
	}
	if !utils.IsValidChartType(req.ChartType) {
		return fmt.Errorf("invalid chart type: %s", req.ChartType)
	}
	return nil
}

// -----------------------------------------------------------------------------

// BuildDashboard runs the full pipeline for one chart refresh. Pipeline
// errors propagate to the caller; an empty provider result is not an
// error and yields the "no data" payload.
func (s *Service) BuildDashboard(req models.MChartRequest) (*models.MDashboardPayload, error) {
	if err := validateRequest(&req); err != nil {
		return nil, err
	}

	start := time.Now()

	raw, err := s.Source.FetchHistory(req.Ticker, req.Period)
	if err != nil {
		s.Monitor.RecordFetch(req.Ticker, "error")
		return nil, err
	}

	table, err := analysis.Normalize(raw)
	if err != nil {
		s.Monitor.RecordFetch(req.Ticker, "error")
		return nil, err
	}

	table = analysis.AddIndicators(table)

	if table.IsEmpty() {
		s.Monitor.RecordFetch(req.Ticker, "empty")
		s.Logger.Info("No data for %s over %s", req.Ticker, req.Period)
		return presentation.NoDataPayload(req), nil
	}

	summary, err := analysis.Summarize(table)
	if err != nil {
		return nil, err
	}

	s.Monitor.RecordFetch(req.Ticker, "ok")
	s.Monitor.ObservePipeline(time.Since(start).Seconds())
	s.Logger.Debug("Built dashboard for %s %s: %d bars", req.Ticker, req.Period, len(table.Bars))

	return presentation.BuildDashboard(req, table, summary), nil
}

// -----------------------------------------------------------------------------

// Quote fetches one day of 1-minute bars for a symbol and reduces it to
// a watchlist quote.
func (s *Service) Quote(symbol string) (*models.MTickerQuote, error) {
	raw, err := s.Source.FetchHistory(symbol, "1d")
	if err != nil {
		s.Monitor.RecordFetch(symbol, "error")
		return nil, err
	}

	table, err := analysis.Normalize(raw)
	if err != nil {
		s.Monitor.RecordFetch(symbol, "error")
		return nil, err
	}

	quote, err := analysis.Quote(table)
	if err != nil {
		s.Monitor.RecordFetch(symbol, "empty")
		return nil, err
	}

	s.Monitor.RecordFetch(symbol, "ok")
	return quote, nil
}

// -----------------------------------------------------------------------------

// RefreshWatchlist walks the fixed watchlist sequentially. Each symbol
// is fetched and computed in isolation: a failure surfaces as that
// symbol's inline error and never aborts the siblings.
func (s *Service) RefreshWatchlist() *models.MWatchlistState {
	entries := make([]models.MWatchlistEntry, 0, len(s.Config.Dashboard.Watchlist))

	for _, symbol := range s.Config.Dashboard.Watchlist {
		quote, err := s.Quote(symbol)
		if err != nil {
			s.Monitor.RecordWatchlistError()
			s.Logger.Warning("Watchlist refresh failed for %s: %v", symbol, err)
			entries = append(entries, models.MWatchlistEntry{
				Symbol: symbol,
				Error:  fmt.Sprintf("Error processing %s: %v", symbol, err),
			})
			continue
		}
		entries = append(entries, models.MWatchlistEntry{Symbol: symbol, Quote: quote})
	}

	return &models.MWatchlistState{
		Type:       "UPDATE",
		Entries:    entries,
		MarketOpen: s.Calendar.IsOpenNow(),
		Timestamp:  time.Now().Unix(),
	}
}
