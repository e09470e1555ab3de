package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// webhookRequest is the gateway's asynchronous callback payload.
type webhookRequest struct {
	TxRef         string `json:"tx_ref" validate:"required"`
	TransactionID string `json:"transaction_id" validate:"required"`
}

// handleWebhook processes a gateway callback. The response always carries a
// terminal status for a processed payment: successful, failed or duplicate.
// Verification outages answer 502 so the gateway redelivers; the payment
// stays pending until a verification attempt completes.
func (h *Handler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var req webhookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	res, err := h.svc.HandleCallback(r.Context(), req.TxRef, req.TransactionID)
	if err != nil {
		// mismatches and aborted settlements still end terminal; report
		// the outcome to the caller and keep the detail in the logs
		if res != nil {
			h.logger.Error("callback settlement failed",
				slog.String("tx_ref", req.TxRef), slog.Any("error", err))
			h.writeJSON(w, http.StatusOK, map[string]string{
				"tx_ref": res.TxRef,
				"status": res.Status,
			})
			return
		}
		if errors.Is(err, port.ErrGatewayUnavailable) {
			h.logger.Warn("verification unavailable, awaiting redelivery",
				slog.String("tx_ref", req.TxRef), slog.Any("error", err))
		}
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{
		"tx_ref": res.TxRef,
		"status": res.Status,
	})
}
