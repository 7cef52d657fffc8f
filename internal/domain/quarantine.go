package domain

import (
	"sort"
	"sync"

	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Quarantine is the session-wide set of candidates excluded after a timeout.
// Entries are never removed.
type Quarantine struct {
	mu  sync.RWMutex
	ids map[m.CandidateID]struct{}
}

// NewQuarantine creates an empty Quarantine.
func NewQuarantine() *Quarantine {
	return &Quarantine{ids: make(map[m.CandidateID]struct{})}
}

// Add flags ids and returns how many were not already present.
func (q *Quarantine) Add(ids ...m.CandidateID) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	added := 0

	for _, id := range ids {
		if _, ok := q.ids[id]; ok {
			continue
		}

		q.ids[id] = struct{}{}
		added++
	}

	quarantinedTotal.Add(float64(added))

	return added
}

// Contains reports whether id is quarantined.
func (q *Quarantine) Contains(id m.CandidateID) bool {
	q.mu.RLock()
	defer q.mu.RUnlock()

	_, ok := q.ids[id]

	return ok
}

// Len returns the number of quarantined candidates.
func (q *Quarantine) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()

	return len(q.ids)
}

// List returns the quarantined ids in a stable order.
func (q *Quarantine) List() []m.CandidateID {
	q.mu.RLock()
	defer q.mu.RUnlock()

	ids := make([]m.CandidateID, 0, len(q.ids))
	for id := range q.ids {
		ids = append(ids, id)
	}

	sortCandidateIDs(ids)

	return ids
}

func sortCandidateIDs(ids []m.CandidateID) {
	sort.Slice(ids, func(i, j int) bool { return lessCandidateID(ids[i], ids[j]) })
}

func lessCandidateID(a, b m.CandidateID) bool {
	if a.Member != b.Member {
		return a.Member < b.Member
	}

	if a.Group != b.Group {
		return a.Group < b.Group
	}

	return a.Index < b.Index
}
