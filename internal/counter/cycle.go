package counter

import (
	"fmt"
	"time"
)

// Cycle is the calendar day a Counter was opened for.
type Cycle struct {
	Year  int
	Month time.Month
	Day   int
}

// CycleOf returns the cycle containing t in t's location.
func CycleOf(t time.Time) Cycle {
	y, m, d := t.Date()
	return Cycle{Year: y, Month: m, Day: d}
}

// Same reports whether t falls on this cycle.
func (c Cycle) Same(t time.Time) bool {
	return c == CycleOf(t)
}

// Time returns local midnight of the cycle.
func (c Cycle) Time() time.Time {
	return time.Date(c.Year, c.Month, c.Day, 0, 0, 0, 0, time.Local)
}

func (c Cycle) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", c.Year, int(c.Month), c.Day)
}
