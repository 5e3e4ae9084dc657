package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func traceID(c *gin.Context) string {
	if v, ok := c.Get("trace_id"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID(c),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID(c),
	})
}

// HandleServiceError maps scheduler/service errors onto HTTP codes.
// Validation failures reject the edit and keep prior state; persistence
// failures mean the optimistic change was already rolled back.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrDuplicateEntry):
		RespondError(c, http.StatusConflict, "Activity is already in this itinerary")
	case errors.Is(err, ErrOutOfRange):
		RespondError(c, http.StatusUnprocessableEntity, "Date is outside the trip date range")
	case errors.Is(err, ErrInvalidTimeRange):
		RespondError(c, http.StatusUnprocessableEntity, "Start time must not be after end time")
	case errors.Is(err, ErrEntryNotFound):
		RespondError(c, http.StatusNotFound, "Scheduled entry not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrRangeNotFound):
		RespondError(c, http.StatusNotFound, "Trip date range not found")
	case errors.Is(err, ErrPlanNotFound):
		RespondError(c, http.StatusNotFound, "Subscription plan not found")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrLoadFailed):
		log.Printf("Load error: %v", err)
		RespondError(c, http.StatusBadGateway, "Failed to load itinerary activities")
	case errors.Is(err, ErrPersistence):
		log.Printf("Persistence error: %v", err)
		RespondError(c, http.StatusBadGateway, "Change could not be saved, please retry")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("Unknown error: %v", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
