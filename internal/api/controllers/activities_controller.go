package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"itinero/internal/catalog"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type ActivitiesController struct {
	catalogService services.CatalogServiceInterface
}

func NewActivitiesController(catalogService services.CatalogServiceInterface) *ActivitiesController {
	return &ActivitiesController{
		catalogService: catalogService,
	}
}

func (a *ActivitiesController) SearchActivities(c *gin.Context) {
	destination := c.Query("destination")
	if destination == "" {
		utils.RespondError(c, http.StatusBadRequest, "destination is required")
		return
	}

	filters := catalog.SearchFilters{}
	for _, tier := range c.QueryArray("priceLevel") {
		filters.PriceTiers = append(filters.PriceTiers, catalog.PriceTier(tier))
	}
	filters.Types = c.QueryArray("type")

	activities, err := a.catalogService.Search(c.Request.Context(), destination, filters)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}

func (a *ActivitiesController) GetActivityByPlaceId(c *gin.Context) {
	placeID := c.Param("placeId")
	if placeID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Place ID is required")
		return
	}

	activity, err := a.catalogService.GetActivity(c.Request.Context(), placeID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	if activity == nil {
		utils.RespondError(c, http.StatusNotFound, "Activity not found")
		return
	}

	utils.RespondSuccess(c, activity, "Activity fetched successfully")
}
