package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock-dashboard/src/dashboard"
	"stock-dashboard/src/helpers"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/monitor"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

type stubSource struct {
	tables map[string]*models.MRawTable
	errs   map[string]error
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) FetchHistory(ticker, period string) (*models.MRawTable, error) {
	if err, ok := s.errs[ticker]; ok {
		return nil, err
	}
	if table, ok := s.tables[ticker]; ok {
		return table, nil
	}
	return &models.MRawTable{Symbol: ticker}, nil
}

func rawTable(symbol string, closes ...float64) *models.MRawTable {
	group := models.MRawQuoteGroup{}
	raw := &models.MRawTable{Symbol: symbol}
	for i, c := range closes {
		raw.Timestamps = append(raw.Timestamps, int64(1704205800+60*i))
		open, high, low, vol := c-1, c+1, c-2, 1000.0
		group.Open = append(group.Open, &open)
		group.High = append(group.High, &high)
		group.Low = append(group.Low, &low)
		group.Close = append(group.Close, &c)
		group.Volume = append(group.Volume, &vol)
	}
	raw.Groups = []models.MRawQuoteGroup{group}
	return raw
}

func newTestServer(source *stubSource) *DashboardServer {
	cfg := &models.MConfig{
		Name:     "test",
		Host:     "127.0.0.1",
		Port:     8501,
		LogLevel: "ERROR",
		Dashboard: models.MDashboardConfig{
			DefaultTicker: "ADBE",
			DefaultPeriod: "1d",
			Watchlist:     []string{"AAPL", "GOOGL"},
		},
	}
	mon := monitor.New()
	svc := dashboard.NewService(cfg, source, utils.NewTradingCalendar(), mon)
	log := logger.NewLogger(cfg.LogLevel, "test")
	return NewDashboardServer(cfg, log, svc, mon)
}

func doRequest(s *DashboardServer, path string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	s.engine.ServeHTTP(recorder, req)
	return recorder
}

// -----------------------------------------------------------------------------
// REST API
// -----------------------------------------------------------------------------

func TestGetDashboard(t *testing.T) {
	srv := newTestServer(&stubSource{tables: map[string]*models.MRawTable{
		"ADBE": rawTable("ADBE", 100, 102, 99, 105),
	}})

	resp := doRequest(srv, "/api/dashboard?ticker=ADBE&period=1d&chart_type=Candlestick")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload models.MDashboardPayload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))

	assert.Equal(t, "ADBE", payload.Ticker)
	assert.False(t, payload.NoData)
	assert.Len(t, payload.Metrics, 4)
	require.NotNil(t, payload.Chart)
	assert.Len(t, payload.History.Rows, 4)
}

func TestGetDashboardDefaults(t *testing.T) {
	// No query parameters: configured default ticker and period apply
	srv := newTestServer(&stubSource{tables: map[string]*models.MRawTable{
		"ADBE": rawTable("ADBE", 100, 105),
	}})

	resp := doRequest(srv, "/api/dashboard")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload models.MDashboardPayload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.Equal(t, "ADBE", payload.Ticker)
	assert.Equal(t, "1d", payload.Period)
}

func TestGetDashboardNoData(t *testing.T) {
	srv := newTestServer(&stubSource{})

	resp := doRequest(srv, "/api/dashboard?ticker=XYZ")
	require.Equal(t, http.StatusOK, resp.Code)

	var payload models.MDashboardPayload
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &payload))
	assert.True(t, payload.NoData)
	assert.Empty(t, payload.Metrics)
}

func TestGetDashboardInvalidParams(t *testing.T) {
	srv := newTestServer(&stubSource{})

	resp := doRequest(srv, "/api/dashboard?ticker=ADBE&period=2y")
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doRequest(srv, "/api/dashboard?ticker=ADBE&chart_type=Pie")
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestGetDashboardFetchError(t *testing.T) {
	srv := newTestServer(&stubSource{errs: map[string]error{
		"ADBE": helpers.NewFetchError("provider unreachable for ADBE", nil),
	}})

	resp := doRequest(srv, "/api/dashboard?ticker=ADBE")
	assert.Equal(t, http.StatusBadGateway, resp.Code)
}

// -----------------------------------------------------------------------------

func TestGetWatchlist(t *testing.T) {
	srv := newTestServer(&stubSource{
		tables: map[string]*models.MRawTable{
			"AAPL": rawTable("AAPL", 100, 104),
		},
		errs: map[string]error{
			"GOOGL": helpers.NewFetchError("provider unreachable for GOOGL", nil),
		},
	})

	resp := doRequest(srv, "/api/watchlist")
	require.Equal(t, http.StatusOK, resp.Code)

	var state models.MWatchlistState
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &state))

	assert.Equal(t, "UPDATE", state.Type)
	require.Len(t, state.Entries, 2)
	require.NotNil(t, state.Entries[0].Quote)
	assert.Equal(t, 104.0, state.Entries[0].Quote.LastPrice)
	assert.Nil(t, state.Entries[1].Quote)
	assert.Contains(t, state.Entries[1].Error, "GOOGL")
}

// -----------------------------------------------------------------------------

func TestGetConfig(t *testing.T) {
	srv := newTestServer(&stubSource{})

	resp := doRequest(srv, "/api/config")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))

	assert.Equal(t, "ADBE", body["default_ticker"])
	assert.Equal(t, "1d", body["default_period"])
	assert.Len(t, body["periods"], len(utils.Periods))
	assert.Len(t, body["chart_types"], len(utils.ChartTypes))
	assert.Len(t, body["indicators"], len(utils.IndicatorNames))
	assert.Len(t, body["watchlist"], 2)
}

// -----------------------------------------------------------------------------

func TestGetHealth(t *testing.T) {
	srv := newTestServer(&stubSource{})

	resp := doRequest(srv, "/api/health")
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(0), body["connections"])
}

// -----------------------------------------------------------------------------

func TestMetricsEndpoint(t *testing.T) {
	srv := newTestServer(&stubSource{tables: map[string]*models.MRawTable{
		"ADBE": rawTable("ADBE", 100, 105),
	}})

	doRequest(srv, "/api/dashboard?ticker=ADBE")

	resp := doRequest(srv, "/metrics")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "dashboard_fetch_requests_total")
}

// -----------------------------------------------------------------------------

func TestBroadcastNonBlocking(t *testing.T) {
	// No hub loop running: the buffered channel absorbs updates and the
	// overflow is dropped instead of blocking the caller.
	srv := newTestServer(&stubSource{})

	for i := 0; i < 300; i++ {
		srv.Broadcast(&models.MWatchlistState{Type: "UPDATE"})
	}
}
