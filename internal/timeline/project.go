// Package timeline derives the ordered career timeline and its boundary
// periods from raw experience records.
package timeline

import (
	"sort"
	"time"

	"github.com/LGuichet/CareerForge/internal/experience"
)

// Timeline is the ordered sequence of experiences, ascending by start date.
// Ordering is the defining invariant: every projection re-establishes it
// over the full set before the timeline is exposed.
type Timeline []experience.Experience

// Project parses raw wire records and sorts them ascending by start date.
// It is a pure function of its input: the input slice is never mutated and
// equal inputs always yield equal timelines. A record with an unparseable
// date fails the whole projection.
func Project(raw []experience.RawExperience) (Timeline, error) {
	out := make(Timeline, 0, len(raw))
	for _, r := range raw {
		exp, err := r.Parse()
		if err != nil {
			return nil, err
		}
		out = append(out, exp)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

// Last returns the chronologically last experience, if any.
func (t Timeline) Last() (experience.Experience, bool) {
	if len(t) == 0 {
		return experience.Experience{}, false
	}
	return t[len(t)-1], true
}

// Find returns the experience with the given identifier, if present.
func (t Timeline) Find(id string) (experience.Experience, bool) {
	if id == "" {
		return experience.Experience{}, false
	}
	for _, exp := range t {
		if exp.ID == id {
			return exp, true
		}
	}
	return experience.Experience{}, false
}

// Overlap names two adjacent experiences whose date ranges intersect.
type Overlap struct {
	Earlier experience.Experience
	Later   experience.Experience
}

// Overlaps reports adjacent experiences whose ranges intersect. Overlapping
// ranges are accepted, not rejected; callers may use this to warn the user.
func (t Timeline) Overlaps() []Overlap {
	var out []Overlap
	for i := 1; i < len(t); i++ {
		if t[i].StartDate.Before(t[i-1].EndDate) {
			out = append(out, Overlap{Earlier: t[i-1], Later: t[i]})
		}
	}
	return out
}

// Gaps returns the uncovered periods between consecutive experiences,
// including the trailing open gap after the last one. An empty timeline has
// a single open gap starting at careerStart.
func (t Timeline) Gaps(careerStart time.Time) []experience.Period {
	if len(t) == 0 {
		return []experience.Period{experience.OpenPeriod(careerStart)}
	}
	var out []experience.Period
	for i := 1; i < len(t); i++ {
		if t[i].StartDate.After(t[i-1].EndDate) {
			out = append(out, experience.ClosedPeriod(t[i-1].EndDate, t[i].StartDate))
		}
	}
	out = append(out, experience.OpenPeriod(t[len(t)-1].EndDate))
	return out
}
