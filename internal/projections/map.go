package projections

import (
	"itinero/internal/catalog"
	"itinero/internal/scheduler"
)

type Marker struct {
	EntryID   string  `json:"entry_id"`
	PlaceID   string  `json:"place_id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// ActivityLookup resolves an entry's weak catalog reference.
type ActivityLookup func(placeID string) (catalog.Activity, bool)

// Markers produces one map marker per entry whose activity carries a valid
// coordinate pair. Activities without coordinates, or missing from the
// catalog, are skipped silently.
func Markers(entries []scheduler.Entry, lookup ActivityLookup) []Marker {
	markers := make([]Marker, 0, len(entries))
	for _, e := range entries {
		activity, ok := lookup(e.PlaceID)
		if !ok || !activity.HasCoordinates() {
			continue
		}
		markers = append(markers, Marker{
			EntryID:   e.ID,
			PlaceID:   activity.PlaceID,
			Name:      activity.Name,
			Latitude:  activity.Coordinates[0],
			Longitude: activity.Coordinates[1],
		})
	}
	return markers
}
