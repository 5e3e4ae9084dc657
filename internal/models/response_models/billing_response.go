package response_models

import (
	"encoding/json"

	dbm "itinero/internal/models/db_models"
)

type PlanFlagResponse struct {
	Plan   string `json:"plan"`   // "free" | "pro"
	Status string `json:"status"` // subscription status, "none" if no row
}

type SubscriptionPlanResponse struct {
	ID          string          `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	PriceMinor  int64           `json:"price_minor"`
	Currency    string          `json:"currency"`
	Features    json.RawMessage `json:"features,omitempty"`
}

func BuildSubscriptionPlanResponse(plan dbm.Plan) SubscriptionPlanResponse {
	resp := SubscriptionPlanResponse{
		ID:         plan.ID.String(),
		Code:       plan.Code,
		Name:       plan.Name,
		PriceMinor: plan.PriceMinor,
		Currency:   plan.Currency,
		Features:   json.RawMessage(plan.Features),
	}
	if plan.Description != nil {
		resp.Description = *plan.Description
	}
	return resp
}
