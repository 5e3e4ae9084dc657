package projections_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"itinero/internal/catalog"
	"itinero/internal/projections"
	"itinero/internal/scheduler"
	"itinero/pkg/utils"
)

func day(t *testing.T, s string) *time.Time {
	t.Helper()
	d, err := utils.ParseDateOnly(s)
	require.NoError(t, err)
	return &d
}

func strPtr(s string) *string { return &s }

func TestTable_GroupsByDayWithUnscheduledLast(t *testing.T) {
	entries := []scheduler.Entry{
		{ID: "e1", PlaceID: "a", Date: day(t, "2024-06-03")},
		{ID: "e2", PlaceID: "b"},
		{ID: "e3", PlaceID: "c", Date: day(t, "2024-06-01")},
		{ID: "e4", PlaceID: "d", Date: day(t, "2024-06-03")},
	}

	groups := projections.Table(entries)
	require.Len(t, groups, 3)

	assert.Equal(t, "2024-06-01", groups[0].Date)
	assert.Equal(t, "2024-06-03", groups[1].Date)
	assert.Equal(t, projections.UnscheduledKey, groups[2].Date)

	// snapshot order survives within a bucket
	assert.Equal(t, "a", groups[1].Entries[0].PlaceID)
	assert.Equal(t, "d", groups[1].Entries[1].PlaceID)
}

func TestTable_IsIdempotent(t *testing.T) {
	entries := []scheduler.Entry{
		{ID: "e1", PlaceID: "a", Date: day(t, "2024-06-02")},
		{ID: "e2", PlaceID: "b"},
	}

	first := projections.Table(entries)
	second := projections.Table(entries)
	assert.Equal(t, first, second)
}

func TestTable_OmitsEmptyUnscheduledBucket(t *testing.T) {
	entries := []scheduler.Entry{
		{ID: "e1", PlaceID: "a", Date: day(t, "2024-06-02")},
	}

	groups := projections.Table(entries)
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-06-02", groups[0].Date)
}

func TestCalendar_SplitsScheduledFromUnscheduled(t *testing.T) {
	entries := []scheduler.Entry{
		{ID: "e1", PlaceID: "a", Date: day(t, "2024-06-03"), StartTime: strPtr("10:00"), EndTime: strPtr("11:00")},
		{ID: "e2", PlaceID: "b"},
		{ID: "e3", PlaceID: "c", Date: day(t, "2024-06-03")}, // date but no times
	}

	view := projections.Calendar(entries)
	require.Len(t, view.Cells, 1)
	assert.Equal(t, "e1", view.Cells[0].EntryID)
	assert.Equal(t, "2024-06-03", view.Cells[0].Date)
	assert.Equal(t, "10:00", view.Cells[0].StartTime)

	require.Len(t, view.Unscheduled, 2)
	assert.Equal(t, "e2", view.Unscheduled[0].ID)
	assert.Equal(t, "e3", view.Unscheduled[1].ID)
}

func TestMarkers_SkipsEntriesWithoutCoordinates(t *testing.T) {
	entries := []scheduler.Entry{
		{ID: "e1", PlaceID: "a"},
		{ID: "e2", PlaceID: "b"},
		{ID: "e3", PlaceID: "missing"},
	}
	catalogByPlace := map[string]catalog.Activity{
		"a": {PlaceID: "a", Name: "Museum", Coordinates: []float64{10.78, 106.69}},
		"b": {PlaceID: "b", Name: "No coords"},
	}

	markers := projections.Markers(entries, func(placeID string) (catalog.Activity, bool) {
		activity, ok := catalogByPlace[placeID]
		return activity, ok
	})

	require.Len(t, markers, 1)
	assert.Equal(t, "e1", markers[0].EntryID)
	assert.Equal(t, 10.78, markers[0].Latitude)
	assert.Equal(t, 106.69, markers[0].Longitude)
}
