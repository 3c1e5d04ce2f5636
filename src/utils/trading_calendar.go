package utils

import (
	"sync"
	"time"

	"github.com/scmhub/calendar"
)

// -----------------------------------------------------------------------------

// TradingCalendar wraps the NYSE calendar (every dashboard symbol trades
// US hours). Falls back to Mon-Fri 09:30-16:00 Eastern when the library
// calendar cannot be loaded.
type TradingCalendar struct {
	Calendar *calendar.Calendar
	Fallback bool
	Timezone *time.Location
}

// -----------------------------------------------------------------------------

// NewTradingCalendar loads the NYSE calendar by MIC code (ISO 10383).
func NewTradingCalendar() *TradingCalendar {
	cal := calendar.GetCalendar("xnys")
	if cal == nil {
		return &TradingCalendar{Fallback: true, Timezone: EasternTime()}
	}
	return &TradingCalendar{Calendar: cal, Fallback: false, Timezone: cal.Loc}
}

// -----------------------------------------------------------------------------

func (tc *TradingCalendar) IsTradingDay(date time.Time) bool {
	if tc.Timezone != nil {
		date = date.In(tc.Timezone)
	}

	if tc.Fallback {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	}
	return tc.Calendar.IsBusinessDay(date)
}

// -----------------------------------------------------------------------------

// IsOpenOnMinute checks if the market is open at a specific minute.
func (tc *TradingCalendar) IsOpenOnMinute(t time.Time) bool {
	if tc.Timezone != nil {
		t = t.In(tc.Timezone)
	}

	if tc.Fallback {
		if !tc.IsTradingDay(t) {
			return false
		}

		hour := t.Hour()
		minute := t.Minute()

		// 9:30 - 16:00 NY Time
		if (hour > 9 || (hour == 9 && minute >= 30)) && hour < 16 {
			return true
		}
		return false
	}

	return tc.Calendar.IsOpen(t)
}

// -----------------------------------------------------------------------------

// IsOpenNow reports whether the market is open at this instant.
func (tc *TradingCalendar) IsOpenNow() bool {
	return tc.IsOpenOnMinute(time.Now())
}

// -----------------------------------------------------------------------------
// Exchange timezone
// -----------------------------------------------------------------------------

var (
	easternOnce sync.Once
	easternLoc  *time.Location
)

// EasternTime returns the exchange-local timezone used for all display
// timestamps. Falls back to a fixed EST offset if the zone database is
// unavailable.
func EasternTime() *time.Location {
	easternOnce.Do(func() {
		loc, err := time.LoadLocation("America/New_York")
		if err != nil {
			loc = time.FixedZone("EST", -5*60*60)
		}
		easternLoc = loc
	})
	return easternLoc
}
