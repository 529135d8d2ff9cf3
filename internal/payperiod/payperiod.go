package payperiod

import "time"

// Resolver answers calendar questions for a payroll month. The reference
// timezone is explicit configuration, not ambient server state: two
// deployments with different system zones must agree on month boundaries.
type Resolver struct {
	loc *time.Location
}

func NewResolver(loc *time.Location) Resolver {
	if loc == nil {
		loc = time.UTC
	}
	return Resolver{loc: loc}
}

// NewResolverFromName builds a Resolver from an IANA zone name, e.g.
// "Asia/Jakarta". Empty name means UTC.
func NewResolverFromName(name string) (Resolver, error) {
	if name == "" {
		return NewResolver(time.UTC), nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return Resolver{}, err
	}
	return NewResolver(loc), nil
}

func (r Resolver) Location() *time.Location {
	return r.loc
}

// MonthBounds returns the first and last day of the month as midnight
// dates in the resolver's zone.
func (r Resolver) MonthBounds(year, month int) (start, end time.Time) {
	start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, r.loc)
	end = start.AddDate(0, 1, -1)
	return start, end
}

func (r Resolver) TotalDays(year, month int) int {
	start, end := r.MonthBounds(year, month)
	return end.Day() - start.Day() + 1
}

func (r Resolver) WeekendDays(year, month int) int {
	start, end := r.MonthBounds(year, month)
	weekends := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			weekends++
		}
	}
	return weekends
}

// WorkingDays is total days minus Saturdays and Sundays. Public holidays
// are not considered.
func (r Resolver) WorkingDays(year, month int) int {
	return r.TotalDays(year, month) - r.WeekendDays(year, month)
}

type Range struct {
	Start time.Time
	End   time.Time
}

// ClipRange intersects [from, to] with [periodStart, periodEnd]. The
// second return is false when the ranges do not overlap.
func ClipRange(from, to, periodStart, periodEnd time.Time) (Range, bool) {
	start := from
	if periodStart.After(start) {
		start = periodStart
	}
	end := to
	if periodEnd.Before(end) {
		end = periodEnd
	}
	if start.After(end) {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

// InclusiveDays counts calendar days from start to end, both inclusive.
// A single day range counts as 1. The count is DST-safe: dates are
// normalised to UTC midnight before subtracting.
func InclusiveDays(start, end time.Time) int {
	if start.After(end) {
		return 0
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}
