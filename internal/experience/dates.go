package experience

import "time"

// DateLayout is the bare calendar-date wire format.
const DateLayout = "2006-01-02"

// ParseDate parses an ISO-8601 date string at day resolution. Both full
// RFC 3339 timestamps and bare YYYY-MM-DD dates are accepted; anything else
// is malformed upstream data and is reported, never coerced.
func ParseDate(field, value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return TruncateToDay(t), nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, &MalformedDataError{Field: field, Value: value, Cause: err}
	}
	return TruncateToDay(t), nil
}

// FormatDate renders a date in the bare calendar-date wire format.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// TruncateToDay drops any sub-day component, normalizing to midnight UTC.
func TruncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Parse converts a raw wire record into an Experience with parsed dates.
func (r RawExperience) Parse() (Experience, error) {
	start, err := ParseDate("startDate", r.StartDate)
	if err != nil {
		return Experience{}, err
	}
	end, err := ParseDate("endDate", r.EndDate)
	if err != nil {
		return Experience{}, err
	}
	return Experience{
		ID:          r.ID,
		JobTitle:    r.JobTitle,
		CompanyName: r.CompanyName,
		Description: r.Description,
		StartDate:   start,
		EndDate:     end,
	}, nil
}
