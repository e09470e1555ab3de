package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"log/slog"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the payment usecase to execute business logic, a validator for
// request bodies and a logger for structured logging. Routes are registered
// on a chi.Router for convenient method handling.
type Handler struct {
	svc      port.PaymentUseCase
	logger   *slog.Logger
	validate *validator.Validate
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// usecase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.PaymentUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger, validate: validator.New()}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/payments/initiate", h.handleInitiate)
		r.Post("/payments/webhook", h.handleWebhook)
		r.Post("/placements/approve", h.handleApprove)
		r.Post("/trackers/{id}/views", h.handleRecordView)
		r.Get("/accounts/{ownerID}/balance", h.handleBalance)
		r.Get("/accounts/{ownerID}/trackers", h.handleTrackers)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// writeJSON encodes v with the proper content type. Encoding failures are
// logged; the status line has already been sent.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the pipeline error taxonomy onto HTTP statuses and sends
// a structured reason.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, port.ErrInvalidAmount),
		errors.Is(err, port.ErrMalformedReference):
		status = http.StatusBadRequest
	case errors.Is(err, port.ErrNotApproved),
		errors.Is(err, port.ErrAlreadySettled):
		status = http.StatusConflict
	case errors.Is(err, port.ErrInvalidCategoryConfig):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, port.ErrPaymentNotFound),
		errors.Is(err, port.ErrPlacementNotFound),
		errors.Is(err, port.ErrTrackerNotFound):
		status = http.StatusNotFound
	case errors.Is(err, port.ErrGatewayUnavailable),
		errors.Is(err, port.ErrGatewayRejected):
		status = http.StatusBadGateway
	}
	if status == http.StatusInternalServerError {
		h.logger.Error("internal error", slog.Any("error", err))
		h.writeJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}
