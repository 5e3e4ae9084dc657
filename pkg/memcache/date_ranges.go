// pkg/mem/date_ranges.go
package mem

import (
	"sync"
	"time"
)

// DateRangeStore holds the trip date bounds per (itinerary, destination).
// The scheduler reads the current value at validation time; updates are
// externally driven, so a concurrent range edit and schedule edit resolve
// to whichever value was current when the edit ran.
type DateRangeStore interface {
	Set(itineraryID, destinationID string, from, to time.Time)

	// Current returns the known bounds for the pair, ok=false if none loaded.
	Current(itineraryID, destinationID string) (from, to time.Time, ok bool)

	Forget(itineraryID, destinationID string)
}

type rangeEntry struct {
	from time.Time
	to   time.Time
}

type DateRanges struct {
	mu   sync.RWMutex
	data map[string]rangeEntry
}

func NewDateRanges() *DateRanges {
	return &DateRanges{
		data: make(map[string]rangeEntry),
	}
}

func rangeKey(itineraryID, destinationID string) string {
	return itineraryID + ":" + destinationID
}

func (s *DateRanges) Set(itineraryID, destinationID string, from, to time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[rangeKey(itineraryID, destinationID)] = rangeEntry{from: from, to: to}
}

func (s *DateRanges) Current(itineraryID, destinationID string) (time.Time, time.Time, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[rangeKey(itineraryID, destinationID)]
	if !ok {
		return time.Time{}, time.Time{}, false
	}
	return e.from, e.to, true
}

func (s *DateRanges) Forget(itineraryID, destinationID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, rangeKey(itineraryID, destinationID))
}
