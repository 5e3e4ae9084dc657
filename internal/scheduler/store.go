package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"itinero/internal/catalog"
	"itinero/pkg/utils"
)

// Entry is one activity placed into one itinerary/destination. A nil Date
// means the entry is unscheduled; StartTime/EndTime are "hh:mm" strings and
// are either both set or both nil.
type Entry struct {
	ID            string
	ItineraryID   string
	DestinationID string
	PlaceID       string
	Date          *time.Time
	StartTime     *string
	EndTime       *string
	Notes         string
	Position      int
	DeletedAt     *time.Time
}

func (e Entry) Deleted() bool { return e.DeletedAt != nil }

// Patch is a partial update sent to the persistence gateway, keyed by column.
type Patch map[string]interface{}

// Gateway is the persistence collaborator. All calls are fallible, possibly
// slow, at-least-once remote writes.
type Gateway interface {
	Create(ctx context.Context, entry Entry) (string, error)
	Update(ctx context.Context, entryID string, patch Patch) error
	SoftDelete(ctx context.Context, entryID string) error
	List(ctx context.Context, itineraryID, destinationID string) ([]Entry, error)
}

// RangeSource supplies the trip date bounds read at validation time.
type RangeSource interface {
	Current(itineraryID, destinationID string) (from, to time.Time, ok bool)
}

// Store holds the scheduled entries for one (itinerary, destination) pair.
//
// Every mutation is applied to memory first, then confirmed against the
// gateway; a failed confirmation rolls the change back. Writes are stamped
// with an issue sequence per entry so a completed-but-superseded gateway call
// never clobbers a newer optimistic value.
type Store struct {
	itineraryID   string
	destinationID string

	mu       sync.Mutex
	entries  []*Entry
	seq      uint64
	inflight map[string]uint64 // entry id -> latest issued stamp

	gateway Gateway
	ranges  RangeSource
	logger  *zap.Logger
}

func NewStore(itineraryID, destinationID string, gateway Gateway, ranges RangeSource, logger *zap.Logger) *Store {
	return &Store{
		itineraryID:   itineraryID,
		destinationID: destinationID,
		inflight:      make(map[string]uint64),
		gateway:       gateway,
		ranges:        ranges,
		logger:        logger,
	}
}

// FetchForDestination replaces the in-memory state with the gateway's current
// non-deleted rows. On failure the prior state is left untouched.
func (s *Store) FetchForDestination(ctx context.Context) ([]Entry, error) {
	loaded, err := s.gateway.List(ctx, s.itineraryID, s.destinationID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrLoadFailed, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = s.entries[:0]
	for i := range loaded {
		if loaded[i].Deleted() {
			continue
		}
		e := loaded[i]
		s.entries = append(s.entries, &e)
	}
	return s.snapshotLocked(), nil
}

// Add inserts a provisional unscheduled entry for the activity, then asks the
// gateway for a durable identifier. The provisional entry is visible to
// reads the moment Add is called; it is removed again if the create fails.
func (s *Store) Add(ctx context.Context, activity catalog.Activity) (Entry, error) {
	s.mu.Lock()
	if s.findActiveByPlaceLocked(activity.PlaceID) != nil {
		s.mu.Unlock()
		return Entry{}, utils.ErrDuplicateEntry
	}

	provisional := &Entry{
		ID:            "pending:" + uuid.New().String(),
		ItineraryID:   s.itineraryID,
		DestinationID: s.destinationID,
		PlaceID:       activity.PlaceID,
		Position:      len(s.entries),
	}
	s.entries = append(s.entries, provisional)
	stamp := s.issueLocked(provisional.ID)
	s.mu.Unlock()

	id, err := s.gateway.Create(ctx, *provisional)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settleLocked(provisional.ID, stamp) {
		return Entry{}, utils.ErrPersistence
	}

	if err != nil {
		s.dropLocked(provisional.ID)
		s.logger.Warn("rolled back optimistic add",
			zap.String("place_id", activity.PlaceID),
			zap.Error(err))
		return Entry{}, fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}

	provisional.ID = id
	return *provisional, nil
}

// Remove soft-deletes the active entry for the activity. The marker is set
// optimistically and reverted if the gateway rejects the delete.
func (s *Store) Remove(ctx context.Context, placeID string) error {
	s.mu.Lock()
	entry := s.findActiveByPlaceLocked(placeID)
	if entry == nil {
		s.mu.Unlock()
		return utils.ErrEntryNotFound
	}

	now := time.Now()
	entry.DeletedAt = &now
	entryID := entry.ID
	stamp := s.issueLocked(entryID)
	s.mu.Unlock()

	err := s.gateway.SoftDelete(ctx, entryID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settleLocked(entryID, stamp) {
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
		}
		return nil
	}

	if err != nil {
		if e := s.findByIDLocked(entryID); e != nil {
			e.DeletedAt = nil
		}
		s.logger.Warn("rolled back optimistic remove",
			zap.String("place_id", placeID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return nil
}

// SetSchedule moves the entry to the given date and time window. A nil date
// unschedules the entry; times must be both present or both absent.
func (s *Store) SetSchedule(ctx context.Context, entryID string, date *time.Time, startTime, endTime *string) error {
	if err := s.validateSchedule(date, startTime, endTime); err != nil {
		return err
	}

	s.mu.Lock()
	entry := s.findByIDLocked(entryID)
	if entry == nil || entry.Deleted() {
		s.mu.Unlock()
		return utils.ErrEntryNotFound
	}

	prevDate, prevStart, prevEnd := entry.Date, entry.StartTime, entry.EndTime
	entry.Date = copyTime(date)
	entry.StartTime = copyString(startTime)
	entry.EndTime = copyString(endTime)
	stamp := s.issueLocked(entryID)
	s.mu.Unlock()

	err := s.gateway.Update(ctx, entryID, Patch{
		"date":       dateColumn(date),
		"start_time": startTime,
		"end_time":   endTime,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settleLocked(entryID, stamp) {
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
		}
		return nil
	}

	if err != nil {
		if e := s.findByIDLocked(entryID); e != nil {
			e.Date, e.StartTime, e.EndTime = prevDate, prevStart, prevEnd
		}
		s.logger.Warn("rolled back optimistic schedule edit",
			zap.String("entry_id", entryID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return nil
}

// SetNotes updates the entry's free-text notes with the same optimistic and
// rollback discipline as SetSchedule.
func (s *Store) SetNotes(ctx context.Context, entryID, notes string) error {
	s.mu.Lock()
	entry := s.findByIDLocked(entryID)
	if entry == nil || entry.Deleted() {
		s.mu.Unlock()
		return utils.ErrEntryNotFound
	}

	prevNotes := entry.Notes
	entry.Notes = notes
	stamp := s.issueLocked(entryID)
	s.mu.Unlock()

	err := s.gateway.Update(ctx, entryID, Patch{"notes": notes})

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settleLocked(entryID, stamp) {
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
		}
		return nil
	}

	if err != nil {
		if e := s.findByIDLocked(entryID); e != nil {
			e.Notes = prevNotes
		}
		return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return nil
}

// Move reschedules the entry onto newDate at newOrder within that day's
// bucket. Entries on other dates keep their relative order.
func (s *Store) Move(ctx context.Context, entryID string, newDate *time.Time, newOrder int) error {
	if err := s.validateSchedule(newDate, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	entry := s.findByIDLocked(entryID)
	if entry == nil || entry.Deleted() {
		s.mu.Unlock()
		return utils.ErrEntryNotFound
	}

	prevIdx := s.indexOfLocked(entryID)
	prevDate := entry.Date

	s.removeAtLocked(prevIdx)
	entry.Date = copyTime(newDate)
	insertAt := s.bucketInsertIndexLocked(newDate, newOrder)
	s.insertAtLocked(insertAt, entry)
	s.renumberLocked()

	stamp := s.issueLocked(entryID)
	s.mu.Unlock()

	err := s.gateway.Update(ctx, entryID, Patch{
		"date":     dateColumn(newDate),
		"position": newOrder,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.settleLocked(entryID, stamp) {
		if err != nil {
			return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
		}
		return nil
	}

	if err != nil {
		if e := s.findByIDLocked(entryID); e != nil {
			s.removeAtLocked(s.indexOfLocked(entryID))
			e.Date = prevDate
			if prevIdx > len(s.entries) {
				prevIdx = len(s.entries)
			}
			s.insertAtLocked(prevIdx, e)
			s.renumberLocked()
		}
		s.logger.Warn("rolled back optimistic move",
			zap.String("entry_id", entryID),
			zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrPersistence, err)
	}
	return nil
}

// IsActivityAdded reports whether a non-deleted entry for the activity exists.
// Local and synchronous; it reflects optimistic state.
func (s *Store) IsActivityAdded(placeID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.findActiveByPlaceLocked(placeID) != nil
}

// Entries returns a snapshot of the non-deleted entries in display order.
func (s *Store) Entries() []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) validateSchedule(date *time.Time, startTime, endTime *string) error {
	if (startTime == nil) != (endTime == nil) {
		return utils.ErrInvalidTimeRange
	}
	if startTime != nil {
		startMin, err := utils.ParseClock(*startTime)
		if err != nil {
			return utils.ErrInvalidTimeRange
		}
		endMin, err := utils.ParseClock(*endTime)
		if err != nil {
			return utils.ErrInvalidTimeRange
		}
		if startMin > endMin {
			return utils.ErrInvalidTimeRange
		}
	}

	if date != nil {
		if from, to, ok := s.ranges.Current(s.itineraryID, s.destinationID); ok {
			day := utils.TruncateToDay(*date)
			if day.Before(utils.TruncateToDay(from)) || day.After(utils.TruncateToDay(to)) {
				return utils.ErrOutOfRange
			}
		}
	}
	return nil
}

// issueLocked stamps a new in-flight write for the entry and returns it.
func (s *Store) issueLocked(entryID string) uint64 {
	s.seq++
	s.inflight[entryID] = s.seq
	return s.seq
}

// settleLocked reports whether the completed write with the given stamp is
// still the latest issued for the entry. Stale completions are discarded and
// must not touch state; the latest one clears the in-flight marker.
func (s *Store) settleLocked(entryID string, stamp uint64) bool {
	latest, ok := s.inflight[entryID]
	if !ok || latest != stamp {
		return false
	}
	delete(s.inflight, entryID)
	return true
}

func (s *Store) findActiveByPlaceLocked(placeID string) *Entry {
	for _, e := range s.entries {
		if e.PlaceID == placeID && !e.Deleted() {
			return e
		}
	}
	return nil
}

func (s *Store) findByIDLocked(entryID string) *Entry {
	for _, e := range s.entries {
		if e.ID == entryID {
			return e
		}
	}
	return nil
}

func (s *Store) indexOfLocked(entryID string) int {
	for i, e := range s.entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

func (s *Store) dropLocked(entryID string) {
	if i := s.indexOfLocked(entryID); i >= 0 {
		s.removeAtLocked(i)
	}
}

func (s *Store) removeAtLocked(i int) {
	if i < 0 || i >= len(s.entries) {
		return
	}
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
}

func (s *Store) insertAtLocked(i int, e *Entry) {
	if i < 0 {
		i = 0
	}
	if i > len(s.entries) {
		i = len(s.entries)
	}
	s.entries = append(s.entries, nil)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = e
}

// bucketInsertIndexLocked finds the slice index where an entry joining the
// given date bucket at the given order should land. The moving entry must
// already be detached from the slice.
func (s *Store) bucketInsertIndexLocked(date *time.Time, order int) int {
	var memberIdx []int
	for i, e := range s.entries {
		if e.Deleted() {
			continue
		}
		if sameDay(e.Date, date) {
			memberIdx = append(memberIdx, i)
		}
	}

	if order < 0 {
		order = 0
	}
	if order < len(memberIdx) {
		return memberIdx[order]
	}
	if len(memberIdx) > 0 {
		return memberIdx[len(memberIdx)-1] + 1
	}
	return len(s.entries)
}

func (s *Store) renumberLocked() {
	counts := make(map[string]int)
	for _, e := range s.entries {
		if e.Deleted() {
			continue
		}
		key := ""
		if e.Date != nil {
			key = utils.FormatDateOnly(*e.Date)
		}
		e.Position = counts[key]
		counts[key]++
	}
}

func (s *Store) snapshotLocked() []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if e.Deleted() {
			continue
		}
		out = append(out, *e)
	}
	return out
}

func sameDay(a, b *time.Time) bool {
	if (a == nil) != (b == nil) {
		return false
	}
	if a == nil {
		return true
	}
	return utils.TruncateToDay(*a).Equal(utils.TruncateToDay(*b))
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// dateColumn renders the nullable date for a gateway patch.
func dateColumn(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return utils.TruncateToDay(*t)
}
