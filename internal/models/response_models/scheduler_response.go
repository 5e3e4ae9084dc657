package response_models

import (
	"itinero/internal/scheduler"
	"itinero/pkg/utils"
)

type ScheduledEntryResponse struct {
	EntryID       string  `json:"entry_id"`
	ItineraryID   string  `json:"itinerary_id"`
	DestinationID string  `json:"destination_id"`
	PlaceID       string  `json:"place_id"`
	Date          *string `json:"date"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	Notes         string  `json:"notes"`
	Position      int     `json:"position"`
}

func BuildEntryResponse(e scheduler.Entry) ScheduledEntryResponse {
	var date *string
	if e.Date != nil {
		d := utils.FormatDateOnly(*e.Date)
		date = &d
	}
	return ScheduledEntryResponse{
		EntryID:       e.ID,
		ItineraryID:   e.ItineraryID,
		DestinationID: e.DestinationID,
		PlaceID:       e.PlaceID,
		Date:          date,
		StartTime:     e.StartTime,
		EndTime:       e.EndTime,
		Notes:         e.Notes,
		Position:      e.Position,
	}
}

func BuildEntryListResponse(entries []scheduler.Entry) []ScheduledEntryResponse {
	out := make([]ScheduledEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, BuildEntryResponse(e))
	}
	return out
}
