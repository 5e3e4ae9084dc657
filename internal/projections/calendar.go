package projections

import (
	"itinero/internal/scheduler"
	"itinero/pkg/utils"
)

type CalendarCell struct {
	EntryID   string `json:"entry_id"`
	PlaceID   string `json:"place_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type CalendarView struct {
	Cells       []CalendarCell    `json:"cells"`
	Unscheduled []scheduler.Entry `json:"unscheduled"`
}

// Calendar maps fully scheduled entries (date plus time window) onto grid
// cells; everything else is surfaced in the unscheduled list.
func Calendar(entries []scheduler.Entry) CalendarView {
	view := CalendarView{
		Cells:       []CalendarCell{},
		Unscheduled: []scheduler.Entry{},
	}

	for _, e := range entries {
		if e.Date == nil || e.StartTime == nil || e.EndTime == nil {
			view.Unscheduled = append(view.Unscheduled, e)
			continue
		}
		view.Cells = append(view.Cells, CalendarCell{
			EntryID:   e.ID,
			PlaceID:   e.PlaceID,
			Date:      utils.FormatDateOnly(*e.Date),
			StartTime: *e.StartTime,
			EndTime:   *e.EndTime,
		})
	}
	return view
}
