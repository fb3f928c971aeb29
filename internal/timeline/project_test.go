package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LGuichet/CareerForge/internal/experience"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func raw(id, start, end string) experience.RawExperience {
	return experience.RawExperience{
		ID:          id,
		JobTitle:    "Engineer",
		CompanyName: "Acme Corp",
		StartDate:   start,
		EndDate:     end,
	}
}

func TestProject_SortsAscendingByStartDate(t *testing.T) {
	input := []experience.RawExperience{
		raw("exp2", "2022-08-01", "2024-03-31"),
		raw("exp1", "2021-01-15T00:00:00.000Z", "2022-06-30T00:00:00.000Z"),
	}

	tl, err := Project(input)
	require.NoError(t, err)
	require.Len(t, tl, 2)
	assert.Equal(t, "exp1", tl[0].ID)
	assert.Equal(t, "exp2", tl[1].ID)
	assert.True(t, tl[0].StartDate.Before(tl[1].StartDate))
}

func TestProject_Idempotent(t *testing.T) {
	input := []experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "2022-08-01", "2024-03-31"),
	}

	first, err := Project(input)
	require.NoError(t, err)

	// Re-projecting the already-sorted wire form yields the same sequence.
	again, err := Project(input)
	require.NoError(t, err)
	assert.Equal(t, first, again)
}

func TestProject_DoesNotMutateInput(t *testing.T) {
	input := []experience.RawExperience{
		raw("exp2", "2022-08-01", "2024-03-31"),
		raw("exp1", "2021-01-15", "2022-06-30"),
	}

	_, err := Project(input)
	require.NoError(t, err)
	assert.Equal(t, "exp2", input[0].ID)
}

func TestProject_Empty(t *testing.T) {
	tl, err := Project(nil)
	require.NoError(t, err)
	assert.Empty(t, tl)
}

func TestProject_MalformedDate(t *testing.T) {
	input := []experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "bogus", "2024-03-31"),
	}

	_, err := Project(input)
	var mErr *experience.MalformedDataError
	require.ErrorAs(t, err, &mErr)
}

func TestTimelineFind(t *testing.T) {
	tl, err := Project([]experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "2022-08-01", "2024-03-31"),
	})
	require.NoError(t, err)

	exp, ok := tl.Find("exp2")
	assert.True(t, ok)
	assert.Equal(t, "exp2", exp.ID)

	_, ok = tl.Find("missing")
	assert.False(t, ok)

	_, ok = tl.Find("")
	assert.False(t, ok)
}

func TestTimelineOverlaps(t *testing.T) {
	tl, err := Project([]experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "2022-05-01", "2024-03-31"),
	})
	require.NoError(t, err)

	overlaps := tl.Overlaps()
	require.Len(t, overlaps, 1)
	assert.Equal(t, "exp1", overlaps[0].Earlier.ID)
	assert.Equal(t, "exp2", overlaps[0].Later.ID)
}

func TestTimelineOverlaps_NoneForDisjointRanges(t *testing.T) {
	tl, err := Project([]experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "2022-08-01", "2024-03-31"),
	})
	require.NoError(t, err)
	assert.Empty(t, tl.Overlaps())
}

func TestTimelineGaps(t *testing.T) {
	tl, err := Project([]experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "2022-08-01", "2024-03-31"),
	})
	require.NoError(t, err)

	gaps := tl.Gaps(date(2015, 1, 1))
	require.Len(t, gaps, 2)
	assert.Equal(t, date(2022, 6, 30), gaps[0].Start)
	assert.Equal(t, date(2022, 8, 1), *gaps[0].End)
	assert.Equal(t, date(2024, 3, 31), gaps[1].Start)
	assert.True(t, gaps[1].IsOpen())
}

func TestTimelineGaps_Empty(t *testing.T) {
	gaps := Timeline{}.Gaps(date(2015, 1, 1))
	require.Len(t, gaps, 1)
	assert.Equal(t, date(2015, 1, 1), gaps[0].Start)
	assert.True(t, gaps[0].IsOpen())
}

func TestCareerStart(t *testing.T) {
	got := CareerStart(date(2025, 1, 1))
	assert.Equal(t, date(2015, 1, 1), got)
}

func TestDefaultPeriod_EmptyTimeline(t *testing.T) {
	// Career boundary 2015-01-01, no experiences: the first gap starts at
	// the boundary and runs open.
	p := DefaultPeriod(Timeline{}, date(2015, 1, 1))
	assert.Equal(t, date(2015, 1, 1), p.Start)
	assert.True(t, p.IsOpen())
}

func TestDefaultPeriod_NonEmptyTimeline(t *testing.T) {
	tl, err := Project([]experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
		raw("exp2", "2022-08-01", "2024-03-31"),
	})
	require.NoError(t, err)

	p := DefaultPeriod(tl, date(2015, 1, 1))
	assert.Equal(t, date(2024, 3, 31), p.Start)
	assert.True(t, p.IsOpen())
}

func TestMemo_RecomputesOnlyOnNewInput(t *testing.T) {
	input := []experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
	}

	var m Memo
	first, recomputed, err := m.Project(input)
	require.NoError(t, err)
	assert.True(t, recomputed)

	second, recomputed, err := m.Project(input)
	require.NoError(t, err)
	assert.False(t, recomputed)
	assert.Equal(t, first, second)

	// A refetch produces a fresh slice, even with identical contents.
	refetched := []experience.RawExperience{
		raw("exp1", "2021-01-15", "2022-06-30"),
	}
	third, recomputed, err := m.Project(refetched)
	require.NoError(t, err)
	assert.True(t, recomputed)
	assert.Equal(t, first, third)
}

func TestMemo_EmptyInputs(t *testing.T) {
	var m Memo
	_, recomputed, err := m.Project(nil)
	require.NoError(t, err)
	assert.True(t, recomputed)

	_, recomputed, err = m.Project(nil)
	require.NoError(t, err)
	assert.False(t, recomputed)
}
