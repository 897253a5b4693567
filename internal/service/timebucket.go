package service

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lifelog/lifelog/internal/models"
)

// weekKey formats an ISO week bucket key, e.g. "2026-W05".
func weekKey(t time.Time) string {
	year, week := t.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// monthKey formats a calendar month bucket key, e.g. "2026-08".
func monthKey(t time.Time) string {
	return t.Format("2006-01")
}

// eventDates extracts the usable calendar dates, sorted ascending. Events
// without a parseable date are skipped rather than aborting the report.
func eventDates(events []models.Event) []time.Time {
	dates := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		dates = append(dates, e.Date.Time)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// gapsInDays returns the day gaps between consecutive sorted dates. Empty
// for fewer than two dates.
func gapsInDays(dates []time.Time) []int {
	if len(dates) < 2 {
		return nil
	}
	gaps := make([]int, 0, len(dates)-1)
	for i := 1; i < len(dates); i++ {
		gaps = append(gaps, int(dates[i].Sub(dates[i-1]).Hours()/24))
	}
	return gaps
}

// uniqueDays counts the distinct calendar days with at least one entry.
func uniqueDays(events []models.Event) int {
	seen := make(map[string]bool)
	for _, e := range events {
		if e.Date.IsZero() {
			continue
		}
		seen[e.Date.Format("2006-01-02")] = true
	}
	return len(seen)
}

// lastN returns the trailing n elements of s (all of s when shorter).
func lastN[T any](s []T, n int) []T {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// mean returns the arithmetic mean, 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// meanInt returns the arithmetic mean of ints, 0 for an empty slice.
func meanInt(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}

// sampleStddev returns the sample standard deviation, 0 for fewer than
// two values.
func sampleStddev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := mean(values)
	var sumSq float64
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
