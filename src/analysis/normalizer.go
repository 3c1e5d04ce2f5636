package analysis

import (
	"fmt"
	"sort"
	"time"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/models"
	"stock-dashboard/src/utils"
)

// -----------------------------------------------------------------------------
// Normalizer
// -----------------------------------------------------------------------------

// Normalize converts a raw fetch result into the canonical price table:
// grouped quote blocks collapse to the field-level columns, timestamps
// become timezone-aware US Eastern instants (naive input is assumed
// UTC), rows are ascending by time and every cell is a scalar. Rows the
// provider nulled (halts, holidays) are dropped.
//
// Idempotent: normalizing an already-canonical table yields the same
// table.
func Normalize(raw *models.MRawTable) (*models.MPriceTable, error) {
	if raw == nil {
		return &models.MPriceTable{}, nil
	}

	table := &models.MPriceTable{Symbol: raw.Symbol}
	if raw.IsEmpty() {
		return table, nil
	}

	group, err := collapseGroups(raw)
	if err != nil {
		return nil, err
	}

	n := len(raw.Timestamps)
	if len(group.Open) != n || len(group.High) != n || len(group.Low) != n ||
		len(group.Close) != n || len(group.Volume) != n {
		return nil, helpers.NewMalformedColumnError(
			fmt.Sprintf("column lengths misaligned for %s", raw.Symbol), nil)
	}

	eastern := utils.EasternTime()

	for i, ts := range raw.Timestamps {
		if group.Open[i] == nil || group.High[i] == nil || group.Low[i] == nil ||
			group.Close[i] == nil || group.Volume[i] == nil {
			continue
		}

		table.Bars = append(table.Bars, models.MPriceBar{
			Datetime: time.Unix(ts, 0).In(eastern),
			Open:     *group.Open[i],
			High:     *group.High[i],
			Low:      *group.Low[i],
			Close:    *group.Close[i],
			Volume:   int64(*group.Volume[i]),
		})
	}

	sort.Slice(table.Bars, func(i, j int) bool {
		return table.Bars[i].Datetime.Before(table.Bars[j].Datetime)
	})

	return table, nil
}

// -----------------------------------------------------------------------------

// collapseGroups reduces the provider's column groups to a single
// field-level group. When fields arrive nested under a symbol label, the
// group matching the table's symbol wins; otherwise the first group is
// taken, mirroring a flatten-to-first-level.
func collapseGroups(raw *models.MRawTable) (*models.MRawQuoteGroup, error) {
	if len(raw.Groups) == 0 {
		return nil, helpers.NewMalformedColumnError(
			fmt.Sprintf("no quote columns for %s", raw.Symbol), nil)
	}

	for i := range raw.Groups {
		g := &raw.Groups[i]
		if g.Symbol == "" || g.Symbol == raw.Symbol {
			return g, nil
		}
	}

	return &raw.Groups[0], nil
}
