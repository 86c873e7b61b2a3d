package app

import (
	"net/http"

	"github.com/burakdemirtas/credit-purchase-system/api"
)

// GetSubscriptionsHandler lists the authenticated user's subscriptions,
// active and canceled alike.
func (app *Application) GetSubscriptionsHandler(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	subscriptions, err := app.subscriptionRepo.GetByUserId(r.Context(), userId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.SubscriptionListResponse{
		Subscriptions: make([]api.SubscriptionResponse, len(subscriptions)),
	}

	for i, sub := range subscriptions {
		resp.Subscriptions[i] = api.SubscriptionResponse{
			SubscriptionId: sub.SubscriptionID,
			PlanId:         sub.PlanID,
			Status:         string(sub.Status),
			CreatedAt:      sub.CreatedAt,
		}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
