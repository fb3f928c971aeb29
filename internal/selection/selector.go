// Package selection owns the single active period the edit form is bound
// to: either a gap to fill or an existing experience to edit.
package selection

import (
	"sync"
	"time"

	"github.com/LGuichet/CareerForge/internal/experience"
	"github.com/LGuichet/CareerForge/internal/timeline"
)

// Selector holds the active period and the identifier of the experience
// being edited. The pair always changes together; binding a stale
// identifier to a new period is never observable.
type Selector struct {
	mu           sync.Mutex
	period       experience.Period
	experienceID string
	loaded       bool
}

// NewSelector returns a selector with no selection; one is established on
// the first timeline load via Reset.
func NewSelector() *Selector {
	return &Selector{}
}

// Reset installs the default selection for a freshly loaded timeline: the
// most recent open gap, with no experience selected. Run once per fresh
// load, never merely because the user is interacting with the form.
func (s *Selector) Reset(t timeline.Timeline, careerStart time.Time) {
	p := timeline.DefaultPeriod(t, careerStart)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = p
	s.experienceID = ""
	s.loaded = true
}

// Select replaces the active period and experience identifier atomically.
// An empty id means the form will create a new record in the period.
func (s *Selector) Select(p experience.Period, experienceID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = p
	s.experienceID = experienceID
	s.loaded = true
}

// Current returns the active period and experience identifier. The third
// result is false before the first timeline load.
func (s *Selector) Current() (experience.Period, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period, s.experienceID, s.loaded
}

// ExperienceID returns the identifier of the record being edited, empty when
// the form represents a new record.
func (s *Selector) ExperienceID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.experienceID
}

// Experience looks up the selected record in the timeline for pre-filling
// the form. It returns false when nothing is selected or the identifier is
// no longer present.
func (s *Selector) Experience(t timeline.Timeline) (experience.Experience, bool) {
	s.mu.Lock()
	id := s.experienceID
	s.mu.Unlock()
	return t.Find(id)
}

// Identity returns the composite selection identity: the experience id when
// one is selected, otherwise the period start date. A change of identity is
// the reset boundary for the edit buffer.
func (s *Selector) Identity() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ""
	}
	if s.experienceID != "" {
		return s.experienceID
	}
	return s.period.Start.Format(experience.DateLayout)
}
