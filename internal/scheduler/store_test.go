package scheduler_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"itinero/internal/catalog"
	"itinero/internal/scheduler"
	"itinero/pkg/utils"
)

type fakeGateway struct {
	mu     sync.Mutex
	nextID int

	createErr error
	updateErr error
	deleteErr error
	listErr   error

	listEntries []scheduler.Entry

	onCreate func(entry scheduler.Entry) (string, error)
	onUpdate func(entryID string, patch scheduler.Patch) error

	updates []scheduler.Patch
}

func (g *fakeGateway) Create(_ context.Context, entry scheduler.Entry) (string, error) {
	if g.onCreate != nil {
		return g.onCreate(entry)
	}
	if g.createErr != nil {
		return "", g.createErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nextID++
	return fmt.Sprintf("entry-%d", g.nextID), nil
}

func (g *fakeGateway) Update(_ context.Context, entryID string, patch scheduler.Patch) error {
	g.mu.Lock()
	g.updates = append(g.updates, patch)
	g.mu.Unlock()
	if g.onUpdate != nil {
		return g.onUpdate(entryID, patch)
	}
	return g.updateErr
}

func (g *fakeGateway) SoftDelete(_ context.Context, _ string) error {
	return g.deleteErr
}

func (g *fakeGateway) List(_ context.Context, _, _ string) ([]scheduler.Entry, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.listEntries, nil
}

type fakeRanges struct {
	from, to time.Time
	known    bool
}

func (r fakeRanges) Current(_, _ string) (time.Time, time.Time, bool) {
	return r.from, r.to, r.known
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDateOnly(s)
	require.NoError(t, err)
	return d
}

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

func newTestStore(gateway scheduler.Gateway, ranges scheduler.RangeSource) *scheduler.Store {
	return scheduler.NewStore("itin-1", "dest-1", gateway, ranges, zap.NewNop())
}

func activity(placeID string) catalog.Activity {
	return catalog.Activity{PlaceID: placeID, Name: "Place " + placeID}
}

func TestStore_AddEnforcesUniqueness(t *testing.T) {
	store := newTestStore(&fakeGateway{}, fakeRanges{})
	ctx := context.Background()

	entry, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)
	assert.Equal(t, "entry-1", entry.ID)
	assert.Nil(t, entry.Date)

	_, err = store.Add(ctx, activity("p1"))
	assert.ErrorIs(t, err, utils.ErrDuplicateEntry)
	assert.Len(t, store.Entries(), 1)
}

func TestStore_AddIsOptimisticallyVisible(t *testing.T) {
	gateway := &fakeGateway{}
	var store *scheduler.Store
	seenDuringCreate := false
	gateway.onCreate = func(entry scheduler.Entry) (string, error) {
		// The persistence call has not resolved yet, but the entry must
		// already be visible to local reads.
		seenDuringCreate = store.IsActivityAdded("p1")
		return "entry-1", nil
	}
	store = newTestStore(gateway, fakeRanges{})

	_, err := store.Add(context.Background(), activity("p1"))
	require.NoError(t, err)
	assert.True(t, seenDuringCreate)
}

func TestStore_AddRollsBackOnGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{createErr: errors.New("boom")}
	store := newTestStore(gateway, fakeRanges{})

	_, err := store.Add(context.Background(), activity("p1"))
	assert.ErrorIs(t, err, utils.ErrPersistence)
	assert.False(t, store.IsActivityAdded("p1"))
	assert.Empty(t, store.Entries())
}

func TestStore_RemoveThenReAdd(t *testing.T) {
	store := newTestStore(&fakeGateway{}, fakeRanges{})
	ctx := context.Background()

	_, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)

	require.NoError(t, store.Remove(ctx, "p1"))
	assert.False(t, store.IsActivityAdded("p1"))
	assert.Empty(t, store.Entries())

	// A soft-deleted entry does not block re-adding; the new add is a
	// fresh logical entry.
	entry, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)
	assert.Equal(t, "entry-2", entry.ID)
	assert.True(t, store.IsActivityAdded("p1"))
	assert.Len(t, store.Entries(), 1)
}

func TestStore_RemoveRollsBackOnGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{deleteErr: errors.New("boom")}
	store := newTestStore(gateway, fakeRanges{})
	ctx := context.Background()

	_, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)

	err = store.Remove(ctx, "p1")
	assert.ErrorIs(t, err, utils.ErrPersistence)
	assert.True(t, store.IsActivityAdded("p1"))
	assert.Len(t, store.Entries(), 1)
}

func TestStore_RemoveUnknownEntry(t *testing.T) {
	store := newTestStore(&fakeGateway{}, fakeRanges{})
	err := store.Remove(context.Background(), "missing")
	assert.ErrorIs(t, err, utils.ErrEntryNotFound)
}

func TestStore_SetScheduleScenario(t *testing.T) {
	ranges := fakeRanges{from: day(t, "2024-06-01"), to: day(t, "2024-06-05"), known: true}
	store := newTestStore(&fakeGateway{}, ranges)
	ctx := context.Background()

	entry, err := store.Add(ctx, activity("A1"))
	require.NoError(t, err)
	require.Nil(t, entry.Date)

	err = store.SetSchedule(ctx, entry.ID, timePtr(day(t, "2024-06-03")), strPtr("10:00"), strPtr("11:00"))
	require.NoError(t, err)

	got := store.Entries()
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Date)
	assert.Equal(t, "2024-06-03", utils.FormatDateOnly(*got[0].Date))
	assert.Equal(t, "10:00", *got[0].StartTime)

	err = store.SetSchedule(ctx, entry.ID, timePtr(day(t, "2024-06-10")), strPtr("10:00"), strPtr("11:00"))
	assert.ErrorIs(t, err, utils.ErrOutOfRange)

	got = store.Entries()
	require.NotNil(t, got[0].Date)
	assert.Equal(t, "2024-06-03", utils.FormatDateOnly(*got[0].Date), "rejected edit must keep the prior date")
}

func TestStore_SetScheduleRejectsInvalidTimeRange(t *testing.T) {
	store := newTestStore(&fakeGateway{}, fakeRanges{})
	ctx := context.Background()

	entry, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)

	err = store.SetSchedule(ctx, entry.ID, nil, strPtr("18:00"), strPtr("09:00"))
	assert.ErrorIs(t, err, utils.ErrInvalidTimeRange)

	// both present or both absent
	err = store.SetSchedule(ctx, entry.ID, nil, strPtr("09:00"), nil)
	assert.ErrorIs(t, err, utils.ErrInvalidTimeRange)

	err = store.SetSchedule(ctx, entry.ID, nil, strPtr("not-a-time"), strPtr("11:00"))
	assert.ErrorIs(t, err, utils.ErrInvalidTimeRange)
}

func TestStore_SetScheduleRollsBackOnGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{}
	ranges := fakeRanges{from: day(t, "2024-06-01"), to: day(t, "2024-06-05"), known: true}
	store := newTestStore(gateway, ranges)
	ctx := context.Background()

	entry, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)
	require.NoError(t, store.SetSchedule(ctx, entry.ID, timePtr(day(t, "2024-06-02")), strPtr("09:00"), strPtr("10:00")))

	gateway.updateErr = errors.New("boom")
	err = store.SetSchedule(ctx, entry.ID, timePtr(day(t, "2024-06-04")), strPtr("13:00"), strPtr("14:00"))
	assert.ErrorIs(t, err, utils.ErrPersistence)

	got := store.Entries()
	require.NotNil(t, got[0].Date)
	assert.Equal(t, "2024-06-02", utils.FormatDateOnly(*got[0].Date))
	assert.Equal(t, "09:00", *got[0].StartTime)
	assert.Equal(t, "10:00", *got[0].EndTime)
}

func TestStore_StaleWriteDoesNotClobberNewerValue(t *testing.T) {
	gateway := &fakeGateway{}
	var store *scheduler.Store
	ctx := context.Background()

	firstCall := true
	gateway.onUpdate = func(entryID string, patch scheduler.Patch) error {
		if firstCall {
			firstCall = false
			// A newer edit is issued and resolves while the first write is
			// still in flight; the first write then fails.
			require.NoError(t, store.SetNotes(ctx, entryID, "newer"))
			return errors.New("slow write lost the race")
		}
		return nil
	}
	store = newTestStore(gateway, fakeRanges{})

	entry, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)

	err = store.SetNotes(ctx, entry.ID, "older")
	assert.ErrorIs(t, err, utils.ErrPersistence)

	// The failed, superseded write must not roll the entry back.
	got := store.Entries()
	assert.Equal(t, "newer", got[0].Notes)
}

func TestStore_MoveKeepsOtherDatesUntouched(t *testing.T) {
	ranges := fakeRanges{from: day(t, "2024-06-01"), to: day(t, "2024-06-05"), known: true}
	store := newTestStore(&fakeGateway{}, ranges)
	ctx := context.Background()

	var ids []string
	for _, place := range []string{"a", "b", "c", "d"} {
		e, err := store.Add(ctx, activity(place))
		require.NoError(t, err)
		ids = append(ids, e.ID)
	}

	require.NoError(t, store.SetSchedule(ctx, ids[0], timePtr(day(t, "2024-06-01")), nil, nil))
	require.NoError(t, store.SetSchedule(ctx, ids[1], timePtr(day(t, "2024-06-01")), nil, nil))
	require.NoError(t, store.SetSchedule(ctx, ids[2], timePtr(day(t, "2024-06-02")), nil, nil))
	require.NoError(t, store.SetSchedule(ctx, ids[3], timePtr(day(t, "2024-06-02")), nil, nil))

	// Move "a" from June 1st to the front of June 2nd.
	require.NoError(t, store.Move(ctx, ids[0], timePtr(day(t, "2024-06-02")), 0))

	var june1, june2 []string
	for _, e := range store.Entries() {
		switch utils.FormatDateOnly(*e.Date) {
		case "2024-06-01":
			june1 = append(june1, e.PlaceID)
		case "2024-06-02":
			june2 = append(june2, e.PlaceID)
		}
	}
	assert.Equal(t, []string{"b"}, june1)
	assert.Equal(t, []string{"a", "c", "d"}, june2, "moved entry lands at the requested order, others keep theirs")
}

func TestStore_MoveOutOfRange(t *testing.T) {
	ranges := fakeRanges{from: day(t, "2024-06-01"), to: day(t, "2024-06-05"), known: true}
	store := newTestStore(&fakeGateway{}, ranges)
	ctx := context.Background()

	entry, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)

	err = store.Move(ctx, entry.ID, timePtr(day(t, "2024-07-01")), 0)
	assert.ErrorIs(t, err, utils.ErrOutOfRange)
	assert.Nil(t, store.Entries()[0].Date)
}

func TestStore_MoveRollsBackOnGatewayFailure(t *testing.T) {
	gateway := &fakeGateway{}
	ranges := fakeRanges{from: day(t, "2024-06-01"), to: day(t, "2024-06-05"), known: true}
	store := newTestStore(gateway, ranges)
	ctx := context.Background()

	first, err := store.Add(ctx, activity("a"))
	require.NoError(t, err)
	second, err := store.Add(ctx, activity("b"))
	require.NoError(t, err)
	require.NoError(t, store.SetSchedule(ctx, first.ID, timePtr(day(t, "2024-06-01")), nil, nil))
	require.NoError(t, store.SetSchedule(ctx, second.ID, timePtr(day(t, "2024-06-02")), nil, nil))

	gateway.updateErr = errors.New("boom")
	err = store.Move(ctx, first.ID, timePtr(day(t, "2024-06-02")), 1)
	assert.ErrorIs(t, err, utils.ErrPersistence)

	got := store.Entries()
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].PlaceID)
	assert.Equal(t, "2024-06-01", utils.FormatDateOnly(*got[0].Date))
}

func TestStore_UniquenessHoldsAcrossEntries(t *testing.T) {
	store := newTestStore(&fakeGateway{}, fakeRanges{})
	ctx := context.Background()

	for _, place := range []string{"a", "b", "c"} {
		_, err := store.Add(ctx, activity(place))
		require.NoError(t, err)
	}

	seen := map[string]bool{}
	for _, e := range store.Entries() {
		assert.False(t, seen[e.PlaceID], "place %s appears twice", e.PlaceID)
		seen[e.PlaceID] = true
	}
}

func TestStore_FetchReplacesStateAndSkipsDeleted(t *testing.T) {
	deleted := time.Now()
	gateway := &fakeGateway{listEntries: []scheduler.Entry{
		{ID: "entry-1", PlaceID: "a"},
		{ID: "entry-2", PlaceID: "b", DeletedAt: &deleted},
	}}
	store := newTestStore(gateway, fakeRanges{})

	entries, err := store.FetchForDestination(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a", entries[0].PlaceID)
}

func TestStore_FetchFailureLeavesStateUntouched(t *testing.T) {
	gateway := &fakeGateway{}
	store := newTestStore(gateway, fakeRanges{})
	ctx := context.Background()

	_, err := store.Add(ctx, activity("p1"))
	require.NoError(t, err)

	gateway.listErr = errors.New("gateway down")
	_, err = store.FetchForDestination(ctx)
	assert.ErrorIs(t, err, utils.ErrLoadFailed)
	assert.True(t, store.IsActivityAdded("p1"))
	assert.Len(t, store.Entries(), 1)
}
