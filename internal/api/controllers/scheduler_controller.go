package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itinero/internal/models/request_models"
	"itinero/internal/models/response_models"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type SchedulerController struct {
	schedulerService services.SchedulerServiceInterface
}

func NewSchedulerController(schedulerService services.SchedulerServiceInterface) *SchedulerController {
	return &SchedulerController{
		schedulerService: schedulerService,
	}
}

// FetchActivities godoc
// @Summary Fetch scheduled activities for a destination
// @Description Load all non-deleted scheduled entries for an itinerary/destination pair, replacing the in-memory view state
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param destinationId path string true "Destination ID"
// @Success 200 {array} response_models.ScheduledEntryResponse
// @Failure 502 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/destinations/{destinationId}/activities [get]
func (s *SchedulerController) FetchActivities(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	destinationID := c.Param("destinationId")
	if itineraryID == "" || destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID and Destination ID are required")
		return
	}

	entries, err := s.schedulerService.FetchActivities(c.Request.Context(), itineraryID, destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildEntryListResponse(entries), "Itinerary activities fetched successfully")
}

// AddActivity godoc
// @Summary Add an activity to an itinerary
// @Description Optimistically insert an unscheduled entry for the activity and persist it
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param request body request_models.AddActivityRequest true "Itinerary ID, Destination ID, Place ID"
// @Success 200 {object} response_models.ScheduledEntryResponse
// @Failure 409 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/add-activity [post]
func (s *SchedulerController) AddActivity(c *gin.Context) {
	var req request_models.AddActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID, DestinationID and PlaceID are required")
		return
	}

	entry, err := s.schedulerService.AddActivity(c.Request.Context(), req.ItineraryID, req.DestinationID, req.PlaceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildEntryResponse(entry), "Activity added to itinerary successfully")
}

// RemoveActivity godoc
// @Summary Remove an activity from an itinerary
// @Description Soft-delete the scheduled entry for the activity; the row is kept for undo/audit
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param request body request_models.RemoveActivityRequest true "Itinerary ID, Destination ID, Place ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/remove-activity [post]
func (s *SchedulerController) RemoveActivity(c *gin.Context) {
	var req request_models.RemoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID, DestinationID and PlaceID are required")
		return
	}

	err := s.schedulerService.RemoveActivity(c.Request.Context(), req.ItineraryID, req.DestinationID, req.PlaceID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity removed from itinerary successfully")
}

// SetSchedule godoc
// @Summary Set the date and time window of a scheduled entry
// @Description Validate the date against the trip range and the time window ordering, then persist
// @Tags Scheduler
// @Accept json
// @Produce json
// @Param request body request_models.SetScheduleRequest true "Entry ID, date, start/end time"
// @Success 200 {object} utils.APIResponse
// @Failure 422 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/set-schedule [post]
func (s *SchedulerController) SetSchedule(c *gin.Context) {
	var req request_models.SetScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID, DestinationID and EntryID are required")
		return
	}

	err := s.schedulerService.SetSchedule(c.Request.Context(), req.ItineraryID, req.DestinationID, req.EntryID, req.Date, req.StartTime, req.EndTime)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule updated successfully")
}

func (s *SchedulerController) SetNotes(c *gin.Context) {
	var req request_models.SetNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID, DestinationID and EntryID are required")
		return
	}

	err := s.schedulerService.SetNotes(c.Request.Context(), req.ItineraryID, req.DestinationID, req.EntryID, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notes updated successfully")
}

// MoveActivity handles a drag-and-drop reorder from the calendar surface.
func (s *SchedulerController) MoveActivity(c *gin.Context) {
	var req request_models.MoveActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "ItineraryID, DestinationID and EntryID are required")
		return
	}

	err := s.schedulerService.MoveActivity(c.Request.Context(), req.ItineraryID, req.DestinationID, req.EntryID, req.Date, req.Order)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Activity moved successfully")
}

// IsActivityAdded drives the add/remove affordance on activity cards.
func (s *SchedulerController) IsActivityAdded(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	destinationID := c.Param("destinationId")
	placeID := c.Query("placeId")
	if itineraryID == "" || destinationID == "" || placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID, Destination ID and placeId are required")
		return
	}

	added := s.schedulerService.IsActivityAdded(itineraryID, destinationID, placeID)
	utils.RespondSuccess(c, gin.H{"added": added}, "Activity presence checked")
}

// GetEntryField is the generic single-field read used by the edit popovers.
func (s *SchedulerController) GetEntryField(c *gin.Context) {
	entryID := c.Param("entryId")
	column := c.Query("column")
	if entryID == "" || column == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID and column are required")
		return
	}

	value, err := s.schedulerService.GetEntryField(c.Request.Context(), entryID, column)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{column: value}, "Entry field fetched successfully")
}

// CloseView releases the per-view scheduler state when the builder unmounts.
func (s *SchedulerController) CloseView(c *gin.Context) {
	itineraryID := c.Param("itineraryId")
	destinationID := c.Param("destinationId")
	if itineraryID == "" || destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID and Destination ID are required")
		return
	}

	s.schedulerService.CloseView(itineraryID, destinationID)
	utils.RespondSuccess(c, nil, "View state released")
}
