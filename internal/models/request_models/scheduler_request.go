package request_models

type AddActivityRequest struct {
	ItineraryID   string `json:"itinerary_id" binding:"required,uuid4"`
	DestinationID string `json:"destination_id" binding:"required,uuid4"`
	PlaceID       string `json:"place_id" binding:"required"`
}

type RemoveActivityRequest struct {
	ItineraryID   string `json:"itinerary_id" binding:"required,uuid4"`
	DestinationID string `json:"destination_id" binding:"required,uuid4"`
	PlaceID       string `json:"place_id" binding:"required"`
}

type SetScheduleRequest struct {
	ItineraryID   string `json:"itinerary_id" binding:"required,uuid4"`
	DestinationID string `json:"destination_id" binding:"required,uuid4"`
	EntryID       string `json:"entry_id" binding:"required,uuid4"`
	// Date is "yyyy-mm-dd"; null clears the date. Times are "hh:mm" and
	// must be both present or both absent.
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type SetNotesRequest struct {
	ItineraryID   string `json:"itinerary_id" binding:"required,uuid4"`
	DestinationID string `json:"destination_id" binding:"required,uuid4"`
	EntryID       string `json:"entry_id" binding:"required,uuid4"`
	Notes         string `json:"notes"`
}

type MoveActivityRequest struct {
	ItineraryID   string  `json:"itinerary_id" binding:"required,uuid4"`
	DestinationID string  `json:"destination_id" binding:"required,uuid4"`
	EntryID       string  `json:"entry_id" binding:"required,uuid4"`
	Date          *string `json:"date"`
	Order         int     `json:"order"`
}
