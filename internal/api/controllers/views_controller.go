package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

// ViewsController serves the three presentation surfaces. Each one is a pure
// projection of the scheduler's current entry collection.
type ViewsController struct {
	viewService services.ViewServiceInterface
}

func NewViewsController(viewService services.ViewServiceInterface) *ViewsController {
	return &ViewsController{
		viewService: viewService,
	}
}

func (v *ViewsController) scope(c *gin.Context) (string, string, bool) {
	itineraryID := c.Param("itineraryId")
	destinationID := c.Param("destinationId")
	if itineraryID == "" || destinationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Itinerary ID and Destination ID are required")
		return "", "", false
	}
	return itineraryID, destinationID, true
}

func (v *ViewsController) GetTableView(c *gin.Context) {
	itineraryID, destinationID, ok := v.scope(c)
	if !ok {
		return
	}

	groups := v.viewService.TableView(itineraryID, destinationID)
	utils.RespondSuccess(c, groups, "Table view built successfully")
}

func (v *ViewsController) GetCalendarView(c *gin.Context) {
	itineraryID, destinationID, ok := v.scope(c)
	if !ok {
		return
	}

	view := v.viewService.CalendarView(itineraryID, destinationID)
	utils.RespondSuccess(c, view, "Calendar view built successfully")
}

func (v *ViewsController) GetMapView(c *gin.Context) {
	itineraryID, destinationID, ok := v.scope(c)
	if !ok {
		return
	}

	markers, err := v.viewService.MapView(c.Request.Context(), itineraryID, destinationID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, markers, "Map view built successfully")
}
