// Package experience provides the work-experience data model shared by the
// timeline engine, the gateway client, and the REST store.
package experience

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// Experience represents a single work-experience entry with parsed dates.
type Experience struct {
	ID          string    `json:"id"`
	JobTitle    string    `json:"jobTitle"`
	CompanyName string    `json:"companyName"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

// ExperienceInput represents the user-submitted fields for a create or
// update. The identifier is routed separately by the editor, never carried
// in the input itself.
type ExperienceInput struct {
	JobTitle    string    `validate:"required,min=2"`
	CompanyName string    `validate:"required,min=2"`
	Description string    `validate:"omitempty,min=10"`
	StartDate   time.Time `validate:"required"`
	EndDate     time.Time `validate:"required"`
}

// RawExperience is the wire representation of an experience: dates travel as
// ISO-8601 strings and the identifier is always present.
type RawExperience struct {
	ID          string `json:"id"`
	JobTitle    string `json:"jobTitle"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

// Period is a contiguous date span: either a gap to fill or the span of an
// existing experience. A nil End means the period is open, running through
// the present day.
type Period struct {
	Start time.Time  `json:"start"`
	End   *time.Time `json:"end,omitempty"`
}

// OpenPeriod returns a period starting at start with an open end.
func OpenPeriod(start time.Time) Period {
	return Period{Start: start}
}

// ClosedPeriod returns a period bounded on both sides.
func ClosedPeriod(start, end time.Time) Period {
	return Period{Start: start, End: &end}
}

// IsOpen reports whether the period has no fixed end date.
func (p Period) IsOpen() bool {
	return p.End == nil
}

// EndOr returns the period end, or now when the period is open.
func (p Period) EndOr(now time.Time) time.Time {
	if p.End == nil {
		return now
	}
	return *p.End
}

// Validate checks the structural rules on the input fields plus the ordering
// invariant: the end date must be strictly after the start date. Inputs that
// fail here must never reach the remote store.
func (in *ExperienceInput) Validate() error {
	validate := validator.New()
	if err := validate.Struct(in); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &ValidationError{Field: errs[0].Field(), Message: errs[0].Tag()}
		}
		return err
	}
	if !in.EndDate.After(in.StartDate) {
		return &ValidationError{Field: "EndDate", Message: "end date must be after start date"}
	}
	return nil
}
