package payroll

import "time"

// Period is one calendar month as an inclusive [Start, End] instant pair.
type Period struct {
	Start time.Time
	End   time.Time
}

// Months are 1-based (time.Month convention). Years outside this window are
// rejected as caller mistakes rather than resolved.
const (
	minPeriodYear = 2000
	maxPeriodYear = 2100
)

// ResolvePeriod maps (month, year) to the calendar month's boundaries in UTC:
// first instant of the month through the last nanosecond before the next one.
func ResolvePeriod(month, year int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, ErrInvalidPeriod
	}
	if year < minPeriodYear || year > maxPeriodYear {
		return Period{}, ErrInvalidPeriod
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	return Period{Start: start, End: end}, nil
}

// Contains reports whether t falls within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// NextPayrollDate is the first calendar instant after the period, i.e. the
// first day of the following month.
func (p Period) NextPayrollDate() time.Time {
	return p.End.Add(time.Nanosecond)
}
