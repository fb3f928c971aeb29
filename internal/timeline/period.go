package timeline

import (
	"time"

	"github.com/LGuichet/CareerForge/internal/experience"
)

// careerStartYears is how far back the career boundary sits when no
// experiences exist yet, so a first gap can be offered.
const careerStartYears = 10

// CareerStart returns the fixed reference date used as the start of the
// first gap on an empty timeline.
func CareerStart(now time.Time) time.Time {
	return experience.TruncateToDay(now).AddDate(-careerStartYears, 0, 0)
}

// DefaultPeriod computes the period the edit form proposes after a fresh
// load: from the end of the most recent experience (or the career start
// boundary when none exist) through the present day, open-ended.
func DefaultPeriod(t Timeline, careerStart time.Time) experience.Period {
	lastEnd := careerStart
	if last, ok := t.Last(); ok {
		lastEnd = last.EndDate
	}
	return experience.OpenPeriod(lastEnd)
}
