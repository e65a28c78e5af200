package models

import "time"

// Period selects the calendar unit a dashboard query covers.
type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// Range resolves the period to the closed [start, end] interval containing
// now, in now's location. Weeks start on Monday. An unrecognized period
// behaves as monthly.
func (p Period) Range(now time.Time) (start, end time.Time) {
	loc := now.Location()
	switch p {
	case PeriodDaily:
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		end = time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999e6, loc)
	case PeriodWeekly:
		// time.Weekday has Sunday == 0; shift so Monday == 0.
		offset := (int(now.Weekday()) + 6) % 7
		start = time.Date(now.Year(), now.Month(), now.Day()-offset, 0, 0, 0, 0, loc)
		end = time.Date(start.Year(), start.Month(), start.Day()+6, 23, 59, 59, 999e6, loc)
	case PeriodYearly:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		end = time.Date(now.Year(), time.December, 31, 23, 59, 59, 999e6, loc)
	default: // monthly, and anything unrecognized
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		end = time.Date(now.Year(), now.Month()+1, 0, 23, 59, 59, 999e6, loc)
	}
	return start, end
}

// TrendBucketLayout returns the Go time layout for trend buckets: calendar
// months for yearly dashboards, calendar days otherwise.
func (p Period) TrendBucketLayout() string {
	if p == PeriodYearly {
		return "2006-01"
	}
	return "2006-01-02"
}

// TrendBucketPattern is TrendBucketLayout expressed as a Postgres to_char
// pattern, for pushing the bucketing into the store.
func (p Period) TrendBucketPattern() string {
	if p == PeriodYearly {
		return "YYYY-MM"
	}
	return "YYYY-MM-DD"
}
