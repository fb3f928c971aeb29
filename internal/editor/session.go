package editor

import (
	"context"

	"github.com/LGuichet/CareerForge/internal/experience"
)

// FormSession is one edit buffer, bound to a single selection identity.
// The original UI reset its form by remounting the component under a new
// key; here the discard-and-reinitialize is explicit.
type FormSession struct {
	identity string

	// Input is the in-progress edit buffer the form mutates freely.
	Input experience.ExperienceInput

	// Editing reports whether the buffer was pre-filled from an existing
	// record rather than started blank for a gap.
	Editing bool
}

// Identity returns the selection identity the session is bound to.
func (f *FormSession) Identity() string {
	return f.identity
}

// FormSession returns the edit buffer for the current selection identity.
// While the identity is unchanged the same session, with any in-progress
// edits, is returned; once the identity changes the old buffer is discarded
// outright and a fresh one initialized. This is a hard discontinuity, never
// a partial carry-over.
func (e *Editor) FormSession(ctx context.Context) (*FormSession, error) {
	tl, err := e.Timeline(ctx)
	if err != nil {
		return nil, err
	}
	identity := e.sel.Identity()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.session != nil && e.session.identity == identity {
		return e.session, nil
	}

	session := &FormSession{identity: identity}
	if exp, ok := e.sel.Experience(tl); ok {
		session.Editing = true
		session.Input = experience.ExperienceInput{
			JobTitle:    exp.JobTitle,
			CompanyName: exp.CompanyName,
			Description: exp.Description,
			StartDate:   exp.StartDate,
			EndDate:     exp.EndDate,
		}
	}
	e.session = session
	return session, nil
}
