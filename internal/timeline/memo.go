package timeline

import (
	"sync"

	"github.com/LGuichet/CareerForge/internal/experience"
)

// Memo caches the last projection by input identity. Projection is pure, so
// recomputation is needed only when the raw slice itself changes, which is
// exactly what a refetch produces.
type Memo struct {
	mu     sync.Mutex
	last   []experience.RawExperience
	seen   bool
	cached Timeline
	err    error
}

// Project returns the projected timeline for raw, recomputing only when the
// input identity differs from the previous call. The second result reports
// whether a recomputation happened, which marks a fresh timeline load.
func (m *Memo) Project(raw []experience.RawExperience) (Timeline, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seen && sameSlice(raw, m.last) {
		return m.cached, false, m.err
	}

	m.cached, m.err = Project(raw)
	m.last = raw
	m.seen = true
	return m.cached, true, m.err
}

// sameSlice reports whether two slices share identity: same length and same
// backing array. Element-wise comparison is deliberately avoided; a refetch
// always yields a new slice even when the data is unchanged.
func sameSlice(a, b []experience.RawExperience) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}
