package date

import "fmt"

// Range represents a range of dates, both boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// Year returns the range covering the whole calendar year.
func Year(year int) Range {
	return Yearly.Range(New(year, 1, 1))
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return !date.Before(r.From) && !date.After(r.To) }

// Days returns the number of days elapsed between From and To.
func (r Range) Days() int { return r.To.DaysSince(r.From) }

func (r Range) String() string { return fmt.Sprintf("%s..%s", r.From, r.To) }
