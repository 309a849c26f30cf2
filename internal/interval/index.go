// Package interval keeps an in-memory picture of the active booking
// intervals per resource. The booking service consults it for fast conflict
// rejection before touching storage; the database exclusion constraint
// remains the final arbiter, so a stale index can only cost an extra
// round-trip, never break the no-overlap invariant.
package interval

import (
	"sort"
	"sync"

	"github.com/wilbyang/reserver/internal/domain"
)

type entry struct {
	bookingID string
	iv        domain.Interval
}

type Index struct {
	mu         sync.RWMutex
	byResource map[string][]entry // sorted by interval start
}

func NewIndex() *Index {
	return &Index{byResource: make(map[string][]entry)}
}

// Insert records an active interval for the resource. The caller is
// responsible for having established that it does not overlap anything
// already present.
func (x *Index) Insert(resourceID, bookingID string, iv domain.Interval) {
	x.mu.Lock()
	defer x.mu.Unlock()

	entries := x.byResource[resourceID]
	i := sort.Search(len(entries), func(i int) bool {
		return !entries[i].iv.Start.Before(iv.Start)
	})
	entries = append(entries, entry{})
	copy(entries[i+1:], entries[i:])
	entries[i] = entry{bookingID: bookingID, iv: iv}
	x.byResource[resourceID] = entries
}

// Remove drops the interval recorded for the booking. Removing an unknown
// booking is a no-op, which makes cancellation idempotent at this layer too.
func (x *Index) Remove(resourceID, bookingID string) {
	x.mu.Lock()
	defer x.mu.Unlock()

	entries := x.byResource[resourceID]
	for i, e := range entries {
		if e.bookingID == bookingID {
			x.byResource[resourceID] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

// Overlaps reports whether the half-open interval intersects any active
// interval for the resource. Touching endpoints are not a conflict.
func (x *Index) Overlaps(resourceID string, iv domain.Interval) bool {
	x.mu.RLock()
	defer x.mu.RUnlock()

	for _, e := range x.byResource[resourceID] {
		if !e.iv.Start.Before(iv.End) {
			break
		}
		if e.iv.Overlaps(iv) {
			return true
		}
	}
	return false
}

// Query returns the active intervals intersecting the window, sorted by
// start ascending. A zero window means everything.
func (x *Index) Query(resourceID string, window domain.Interval) []domain.Interval {
	x.mu.RLock()
	defer x.mu.RUnlock()

	var res []domain.Interval
	for _, e := range x.byResource[resourceID] {
		if window.IsZero() || e.iv.Overlaps(window) {
			res = append(res, e.iv)
		}
		if !window.IsZero() && !e.iv.Start.Before(window.End) {
			break
		}
	}
	return res
}

// Len reports the number of indexed intervals for the resource.
func (x *Index) Len(resourceID string) int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.byResource[resourceID])
}
