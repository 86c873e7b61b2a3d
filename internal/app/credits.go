package app

import (
	"errors"
	"net/http"

	"github.com/burakdemirtas/credit-purchase-system/api"
	"github.com/burakdemirtas/credit-purchase-system/internal/domain"
)

// GetCreditBalanceHandler returns the authenticated user's credit balance.
func (app *Application) GetCreditBalanceHandler(w http.ResponseWriter, r *http.Request) {
	userId := app.contextGetUserId(r)

	balance, err := app.creditRepo.GetBalance(r.Context(), userId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CreditBalanceResponse{
		Balance: balance,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
