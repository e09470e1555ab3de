package httpadapter

import (
	"encoding/json"
	"net/http"
)

// approveRequest identifies the placement being moderated.
type approveRequest struct {
	AdID      int64 `json:"ad_id" validate:"required,gt=0"`
	WebsiteID int64 `json:"website_id" validate:"required,gt=0"`
}

// handleApprove marks a placement approved on behalf of the moderation
// collaborator. Approval is a precondition for payment initiation.
func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err := h.svc.ApprovePlacement(r.Context(), req.AdID, req.WebsiteID); err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "approved"})
}
