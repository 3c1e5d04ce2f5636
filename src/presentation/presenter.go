package presentation

import (
	"fmt"
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// PresentationAdapter: pure formatting, no computation.
// -----------------------------------------------------------------------------

const (
	datetimeLayout = "2006-01-02 15:04"
	chartHeight    = 600
)

// -----------------------------------------------------------------------------
// Metric formatting
// -----------------------------------------------------------------------------

// FormatPrice renders a price as "123.45 USD".
func FormatPrice(v float64) string {
	return fmt.Sprintf("%.2f USD", v)
}

// FormatDelta renders a change with its percentage, "1.23 (0.45%)".
func FormatDelta(change, pctChange float64) string {
	return fmt.Sprintf("%.2f (%.2f%%)", change, pctChange)
}

// FormatVolume renders a share count with thousands separators.
func FormatVolume(v int64) string {
	return humanize.Comma(v)
}

// -----------------------------------------------------------------------------

// MetricDisplays shapes the four metric tiles: last price with delta,
// high, low and total volume.
func MetricDisplays(ticker string, m *models.MSummaryMetrics) []models.MMetricDisplay {
	return []models.MMetricDisplay{
		{
			Label: fmt.Sprintf("%s Last Price", ticker),
			Value: FormatPrice(m.LastClose),
			Delta: FormatDelta(m.Change, m.PctChange),
		},
		{Label: "High", Value: FormatPrice(m.High)},
		{Label: "Low", Value: FormatPrice(m.Low)},
		{Label: "Volume", Value: FormatVolume(m.VolumeTotal)},
	}
}

// -----------------------------------------------------------------------------
// Chart shaping
// -----------------------------------------------------------------------------

// BuildChart shapes the chart object: the price series (candlestick or
// line) followed by one overlay per selected indicator.
func BuildChart(req models.MChartRequest, table *models.MPriceTable) *models.MChart {
	chart := &models.MChart{
		Title:      fmt.Sprintf("%s %s Chart", req.Ticker, strings.ToUpper(req.Period)),
		XAxisTitle: "Time",
		YAxisTitle: "Price (USD)",
		Height:     chartHeight,
	}

	x := datetimeLabels(table)

	if req.ChartType == "Candlestick" {
		n := len(table.Bars)
		series := models.MChartSeries{
			Name:  req.Ticker,
			Type:  "candlestick",
			X:     x,
			Open:  make([]float64, n),
			High:  make([]float64, n),
			Low:   make([]float64, n),
			Close: make([]float64, n),
		}
		for i, b := range table.Bars {
			series.Open[i] = b.Open
			series.High[i] = b.High
			series.Low[i] = b.Low
			series.Close[i] = b.Close
		}
		chart.Series = append(chart.Series, series)
	} else {
		y := make([]*float64, len(table.Bars))
		for i, b := range table.Bars {
			c := b.Close
			y[i] = &c
		}
		chart.Series = append(chart.Series, models.MChartSeries{
			Name: req.Ticker,
			Type: "line",
			X:    x,
			Y:    y,
		})
	}

	for _, indicator := range req.Indicators {
		switch indicator {
		case "SMA 20":
			chart.Series = append(chart.Series, overlaySeries("SMA 20", x, table.SMA20))
		case "EMA 20":
			chart.Series = append(chart.Series, overlaySeries("EMA 20", x, table.EMA20))
		}
	}

	return chart
}

// -----------------------------------------------------------------------------

// overlaySeries converts an indicator column into a scatter series,
// mapping the NaN warm-up rows to nulls.
func overlaySeries(name string, x []string, column []float64) models.MChartSeries {
	y := make([]*float64, len(column))
	for i, v := range column {
		if !math.IsNaN(v) {
			value := v
			y[i] = &value
		}
	}
	return models.MChartSeries{Name: name, Type: "scatter", X: x, Y: y}
}

// -----------------------------------------------------------------------------
// Table views
// -----------------------------------------------------------------------------

// HistoryTable shapes the OHLCV history view.
func HistoryTable(table *models.MPriceTable) *models.MTableView {
	view := &models.MTableView{
		Title:   "Historical Data",
		Columns: []string{"Datetime", "Open", "High", "Low", "Close", "Volume"},
	}
	for _, b := range table.Bars {
		view.Rows = append(view.Rows, []string{
			b.Datetime.Format(datetimeLayout),
			fmt.Sprintf("%.2f", b.Open),
			fmt.Sprintf("%.2f", b.High),
			fmt.Sprintf("%.2f", b.Low),
			fmt.Sprintf("%.2f", b.Close),
			FormatVolume(b.Volume),
		})
	}
	return view
}

// -----------------------------------------------------------------------------

// IndicatorTable shapes the indicator columns view. Undefined rows
// render as empty cells.
func IndicatorTable(table *models.MPriceTable) *models.MTableView {
	view := &models.MTableView{
		Title:   "Technical Indicators",
		Columns: []string{"Datetime", "SMA_20", "EMA_20"},
	}
	for i, b := range table.Bars {
		view.Rows = append(view.Rows, []string{
			b.Datetime.Format(datetimeLayout),
			indicatorCell(table.SMA20, i),
			indicatorCell(table.EMA20, i),
		})
	}
	return view
}

// -----------------------------------------------------------------------------

func indicatorCell(column []float64, i int) string {
	if i >= len(column) || math.IsNaN(column[i]) {
		return ""
	}
	return fmt.Sprintf("%.2f", column[i])
}

// -----------------------------------------------------------------------------

func datetimeLabels(table *models.MPriceTable) []string {
	labels := make([]string, len(table.Bars))
	for i, b := range table.Bars {
		labels[i] = b.Datetime.Format(datetimeLayout)
	}
	return labels
}

// -----------------------------------------------------------------------------
// Payload assembly
// -----------------------------------------------------------------------------

// BuildDashboard assembles the full refresh payload for the UI shell.
func BuildDashboard(req models.MChartRequest, table *models.MPriceTable, summary *models.MSummaryMetrics) *models.MDashboardPayload {
	return &models.MDashboardPayload{
		Ticker:     req.Ticker,
		Period:     req.Period,
		Metrics:    MetricDisplays(req.Ticker, summary),
		Chart:      BuildChart(req, table),
		History:    HistoryTable(table),
		Indicators: IndicatorTable(table),
	}
}

// -----------------------------------------------------------------------------

// NoDataPayload is the valid empty state: the chart draws nothing and
// no metric tiles are present, so the panel cannot show misleading
// zeros.
func NoDataPayload(req models.MChartRequest) *models.MDashboardPayload {
	return &models.MDashboardPayload{
		Ticker: req.Ticker,
		Period: req.Period,
		NoData: true,
		Chart: &models.MChart{
			Title:      fmt.Sprintf("%s %s Chart", req.Ticker, strings.ToUpper(req.Period)),
			XAxisTitle: "Time",
			YAxisTitle: "Price (USD)",
			Height:     chartHeight,
		},
	}
}
