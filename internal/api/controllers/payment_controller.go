package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"itinero/internal/services"
	"itinero/pkg/utils"
)

type PaymentController struct {
	paymentService services.PaymentService
	planService    services.PlanServiceInterface
}

func NewPaymentController(paymentService services.PaymentService, planService services.PlanServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
		planService:    planService,
	}
}

// ListPlans returns the active subscription plans for the pricing page.
func (p *PaymentController) ListPlans(c *gin.Context) {
	plans, err := p.planService.ListPlans(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plans, "Plans fetched successfully")
}

func (p *PaymentController) GetPlanById(c *gin.Context) {
	planID := c.Param("planId")
	if _, err := uuid.Parse(planID); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "planId is not a valid UUID")
		return
	}

	plan, err := p.planService.GetPlanByID(c.Request.Context(), planID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, plan, "Plan fetched successfully")
}

// GetPlanFlag godoc
// @Summary Get the caller's subscription plan flag
// @Description Read-only plan/status pair consumed by feature gates in the UI
// @Tags Payments
// @Produce json
// @Success 200 {object} response_models.PlanFlagResponse
// @Security BearerAuth
// @Router /payments/plan [get]
func (p *PaymentController) GetPlanFlag(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	accountID, err := uuid.Parse(userID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "user_id is not a valid UUID")
		return
	}

	flag, err := p.paymentService.GetPlanFlag(c.Request.Context(), accountID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, flag, "Plan flag fetched successfully")
}

func (p *PaymentController) HandleWebhook(c *gin.Context) {
	p.paymentService.HandleWebhook(c)
}
