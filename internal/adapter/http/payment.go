package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// initiateRequest is the payer's checkout intent. Validation tags guard the
// synchronously-checked client-input class of failures.
type initiateRequest struct {
	AdID      int64  `json:"ad_id" validate:"required,gt=0"`
	WebsiteID int64  `json:"website_id" validate:"required,gt=0"`
	Amount    int64  `json:"amount" validate:"required,gt=0"`
	Currency  string `json:"currency" validate:"omitempty,len=3"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"omitempty,max=32"`
	UserID    string `json:"user_id" validate:"required"`
}

// handleInitiate opens a pending payment for an approved placement and
// returns the gateway's checkout redirect. Eligibility failures map to the
// structured reasons of the error taxonomy; parsing and validation errors
// produce HTTP 400.
func (h *Handler) handleInitiate(w http.ResponseWriter, r *http.Request) {
	var req initiateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.svc.InitiatePayment(r.Context(), port.InitiateRequest{
		AdID:      req.AdID,
		WebsiteID: req.WebsiteID,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Email:     req.Email,
		Phone:     req.Phone,
		UserID:    req.UserID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"tx_ref": resp.TxRef,
		"link":   resp.RedirectURL,
	})
}
