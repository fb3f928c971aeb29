// Package editor routes experience form submissions to the correct remote
// operation and keeps local timeline state consistent with the store
// through invalidate-and-refetch.
package editor

import (
	"context"
	"sync"
	"time"

	"github.com/LGuichet/CareerForge/internal/experience"
	"github.com/LGuichet/CareerForge/internal/gateway"
	"github.com/LGuichet/CareerForge/internal/querycache"
	"github.com/LGuichet/CareerForge/internal/selection"
	"github.com/LGuichet/CareerForge/internal/timeline"
)

// Editor binds the gateway, the query cache, the projector memo, and the
// period selector into the engine the presentation layer talks to.
type Editor struct {
	gw    gateway.Gateway
	cache *querycache.Cache
	memo  *timeline.Memo
	sel   *selection.Selector
	now   func() time.Time

	mu            sync.Mutex
	createPending bool
	updatePending bool
	lastErr       error
	session       *FormSession
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock overrides the time source; the default is time.Now.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// New creates an editor backed by the given gateway.
func New(gw gateway.Gateway, opts ...Option) *Editor {
	e := &Editor{
		gw:   gw,
		memo: &timeline.Memo{},
		sel:  selection.NewSelector(),
		now:  time.Now,
	}
	e.cache = querycache.New(gw.List)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Timeline returns the current projected timeline, fetching from the store
// when the cache is stale. On every fresh load the default period is
// re-derived and the selection reset; cached reads leave the selection
// untouched so user interaction never loses its place.
func (e *Editor) Timeline(ctx context.Context) (timeline.Timeline, error) {
	raw, err := e.cache.Get(ctx)
	if err != nil {
		return nil, err
	}

	tl, fresh, err := e.memo.Project(raw)
	if err != nil {
		return nil, err
	}
	if fresh {
		e.sel.Reset(tl, timeline.CareerStart(e.now()))
	}
	return tl, nil
}

// CareerStart returns the boundary date used for the first gap on an empty
// timeline.
func (e *Editor) CareerStart() time.Time {
	return timeline.CareerStart(e.now())
}

// SelectPeriod replaces the active period and experience identifier, both
// at once. An empty id means the form will create a new record.
func (e *Editor) SelectPeriod(p experience.Period, experienceID string) {
	e.sel.Select(p, experienceID)
}

// Selection returns the active period and experience identifier; the third
// result is false before the first timeline load.
func (e *Editor) Selection() (experience.Period, string, bool) {
	return e.sel.Current()
}

// SelectedExperience returns the record the form is editing, fetching the
// timeline as needed. ok is false when the form represents a new record.
func (e *Editor) SelectedExperience(ctx context.Context) (experience.Experience, bool, error) {
	tl, err := e.Timeline(ctx)
	if err != nil {
		return experience.Experience{}, false, err
	}
	exp, ok := e.sel.Experience(tl)
	return exp, ok, nil
}

// Submit routes a form submission: with an experience selected it becomes
// an update carrying that identifier, otherwise a create. Exactly one of
// the two is issued per submission. Invalid input is rejected before any
// gateway call. On success the cached timeline is invalidated so the next
// read refetches; on failure the timeline and selection are left unchanged
// and the error is surfaced without retry.
func (e *Editor) Submit(ctx context.Context, in experience.ExperienceInput) error {
	if err := in.Validate(); err != nil {
		e.setErr(err)
		return err
	}

	// The selection id at submit time decides the route; it always wins
	// over any identifier embedded in the submitted data.
	id := e.sel.ExperienceID()

	var err error
	if id != "" {
		e.setUpdatePending(true)
		_, err = e.gw.Update(ctx, id, in)
		e.setUpdatePending(false)
	} else {
		e.setCreatePending(true)
		_, err = e.gw.Create(ctx, in)
		e.setCreatePending(false)
	}

	if err != nil {
		e.setErr(err)
		return err
	}

	e.setErr(nil)
	e.cache.Invalidate()
	return nil
}

// Pending reports whether any mutation is in flight: the logical OR of the
// create and update flags. Advisory only, used to disable double submission.
func (e *Editor) Pending() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.createPending || e.updatePending
}

// LastErr returns the most recent submission error, nil after a success.
func (e *Editor) LastErr() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

func (e *Editor) setCreatePending(v bool) {
	e.mu.Lock()
	e.createPending = v
	e.mu.Unlock()
}

func (e *Editor) setUpdatePending(v bool) {
	e.mu.Lock()
	e.updatePending = v
	e.mu.Unlock()
}

func (e *Editor) setErr(err error) {
	e.mu.Lock()
	e.lastErr = err
	e.mu.Unlock()
}
