package extract

import (
	"strings"
	"time"

	"github.com/poiesic/collegium/lexicon"
)

// Window is a closed date range at day granularity.
type Window struct {
	From, To time.Time
}

// TodayWindow covers the current day only.
func TodayWindow(now time.Time) Window {
	d := startOfDay(now)
	return Window{From: d, To: d}
}

// TomorrowWindow covers the next day only.
func TomorrowWindow(now time.Time) Window {
	d := startOfDay(now).AddDate(0, 0, 1)
	return Window{From: d, To: d}
}

// WeekWindow covers the current calendar week, Monday through Sunday.
func WeekWindow(now time.Time) Window {
	d := startOfDay(now)
	offset := (int(d.Weekday()) + 6) % 7 // Monday is day 0
	start := d.AddDate(0, 0, -offset)
	return Window{From: start, To: start.AddDate(0, 0, 6)}
}

// MonthWindow covers the next thirty days starting today.
func MonthWindow(now time.Time) Window {
	d := startOfDay(now)
	return Window{From: d, To: d.AddDate(0, 0, 30)}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// hasPeriod reports whether any surface form of the time-period tag
// occurs in the query.
func hasPeriod(lex *lexicon.Lexicon, query, tag string) bool {
	for _, form := range lex.TimePeriods()[tag] {
		if strings.Contains(query, form) {
			return true
		}
	}
	return false
}
