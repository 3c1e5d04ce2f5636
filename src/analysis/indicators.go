package analysis

import (
	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------
// IndicatorEngine
// -----------------------------------------------------------------------------

// AddIndicators appends the SMA_20 and EMA_20 columns to the canonical
// table, aligned to row order. Rows before the 20-bar window fills hold
// NaN, which the presentation layer renders as undefined. A no-op on an
// empty table.
func AddIndicators(table *models.MPriceTable) *models.MPriceTable {
	if table == nil {
		return table
	}

	closes := table.Closes()
	table.SMA20 = core.SMASeries(closes, utils.IndicatorWindow)
	table.EMA20 = core.EMASeries(closes, utils.IndicatorWindow)

	return table
}
