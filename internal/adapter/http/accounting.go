package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/domain"
)

// handleBalance returns the owner's balance. Owners without earnings read
// as a zero balance.
func (h *Handler) handleBalance(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil || ownerID <= 0 {
		http.Error(w, "invalid owner id", http.StatusBadRequest)
		return
	}
	balance, err := h.svc.GetBalance(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{
		"owner_id":          balance.OwnerID,
		"total_earnings":    balance.TotalEarnings,
		"available_balance": balance.AvailableBalance,
	})
}

type trackerView struct {
	ID            int64  `json:"id"`
	PaymentID     int64  `json:"payment_id"`
	CategoryID    int64  `json:"category_id"`
	Amount        int64  `json:"amount"`
	ViewsRequired int64  `json:"views_required"`
	CurrentViews  int64  `json:"current_views"`
	Status        string `json:"status"`
}

// handleTrackers lists the owner's delivery trackers together with the
// aggregate withdrawable amount consumed by the payout flow.
func (h *Handler) handleTrackers(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(chi.URLParam(r, "ownerID"), 10, 64)
	if err != nil || ownerID <= 0 {
		http.Error(w, "invalid owner id", http.StatusBadRequest)
		return
	}
	summary, err := h.svc.ListTrackers(r.Context(), ownerID)
	if err != nil {
		h.writeError(w, err)
		return
	}

	views := make([]trackerView, 0, len(summary.Trackers))
	for i := range summary.Trackers {
		views = append(views, trackerFromDomain(&summary.Trackers[i]))
	}
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"trackers":     views,
		"withdrawable": summary.Withdrawable,
	})
}

// handleRecordView increments a tracker's view count on behalf of the
// display-tracking collaborator and returns the updated tracker.
func (h *Handler) handleRecordView(w http.ResponseWriter, r *http.Request) {
	trackerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || trackerID <= 0 {
		http.Error(w, "invalid tracker id", http.StatusBadRequest)
		return
	}
	t, err := h.svc.RecordView(r.Context(), trackerID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, trackerFromDomain(t))
}

func trackerFromDomain(t *domain.Tracker) trackerView {
	return trackerView{
		ID:            t.ID,
		PaymentID:     t.PaymentID,
		CategoryID:    t.CategoryID,
		Amount:        t.Amount,
		ViewsRequired: t.ViewsRequired,
		CurrentViews:  t.CurrentViews,
		Status:        string(t.Status),
	}
}
