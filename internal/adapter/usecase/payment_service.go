package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/domain"
	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
	"github.com/YepperAds/yepper-backend-sub001/internal/core/txref"
)

// DefaultCurrency is used when an initiation request carries none.
const DefaultCurrency = "RWF"

// successfulStatus is the verification status the gateway reports for a
// completed charge.
const successfulStatus = "successful"

// PaymentService implements port.PaymentUseCase. It orchestrates the
// placement ledger and the payment gateway; all persistence-level atomicity
// lives behind the repository port.
type PaymentService struct {
	repo    port.LedgerRepository
	gateway port.PaymentGateway
	logger  *slog.Logger
}

// NewPaymentService creates the usecase over its two outbound ports.
func NewPaymentService(repo port.LedgerRepository, gw port.PaymentGateway, logger *slog.Logger) *PaymentService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PaymentService{repo: repo, gateway: gw, logger: logger}
}

// InitiatePayment validates eligibility of the (ad, website) pair, opens a
// pending payment and asks the gateway for a checkout redirect. If the
// gateway call fails the pending payment is deleted again so no pending row
// outlives a failed initiation.
func (s *PaymentService) InitiatePayment(ctx context.Context, req port.InitiateRequest) (*port.InitiateResponse, error) {
	if req.Amount <= 0 {
		return nil, port.ErrInvalidAmount
	}

	pl, err := s.repo.GetPlacement(ctx, req.AdID, req.WebsiteID)
	if err != nil {
		return nil, err
	}
	if pl == nil {
		return nil, port.ErrNotApproved
	}
	if pl.Confirmed {
		return nil, port.ErrAlreadySettled
	}
	if !pl.Approved {
		return nil, port.ErrNotApproved
	}

	cats, err := s.repo.GetPlacementCategories(ctx, pl.ID)
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, port.ErrInvalidCategoryConfig
	}
	for i := range cats {
		if !cats[i].HasVisitorRange() {
			return nil, port.ErrInvalidCategoryConfig
		}
	}

	currency := strings.ToUpper(req.Currency)
	if currency == "" {
		currency = DefaultCurrency
	}

	payment := &domain.Payment{
		TxRef:      txref.New(req.AdID, req.WebsiteID),
		AdID:       req.AdID,
		WebsiteID:  req.WebsiteID,
		WebOwnerID: cats[0].OwnerID,
		Amount:     req.Amount,
		Currency:   currency,
		Status:     domain.PaymentPending,
	}
	if err = s.repo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	checkout, err := s.gateway.CreateCheckout(ctx, port.CheckoutRequest{
		TxRef:    payment.TxRef,
		Amount:   payment.Amount,
		Currency: payment.Currency,
		Customer: port.Customer{
			Email:  req.Email,
			Phone:  req.Phone,
			UserID: req.UserID,
		},
		Meta: port.CheckoutMeta{
			AdID:      req.AdID,
			WebsiteID: req.WebsiteID,
			OwnerID:   payment.WebOwnerID,
		},
	})
	if err != nil {
		// compensating delete; the pending row must not survive
		if delErr := s.repo.DeletePayment(ctx, payment.TxRef); delErr != nil {
			s.logger.Error("compensating delete failed",
				slog.String("tx_ref", payment.TxRef), slog.Any("error", delErr))
		}
		return nil, fmt.Errorf("checkout creation: %w", err)
	}

	return &port.InitiateResponse{
		TxRef:       payment.TxRef,
		RedirectURL: checkout.RedirectURL,
	}, nil
}

// HandleCallback drives settlement for one gateway callback delivery. The
// callback's own claims are never trusted: the transaction is re-verified
// with the gateway and the verified amount and currency are compared against
// the values recorded at initiation. Whatever the outcome, once verification
// was attempted the payment ends terminal, never pending.
func (s *PaymentService) HandleCallback(ctx context.Context, txRef, transactionID string) (*port.CallbackResult, error) {
	ref, err := txref.Parse(txRef)
	if err != nil {
		return nil, err
	}

	payment, err := s.repo.GetPaymentByTxRef(ctx, txRef)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, port.ErrPaymentNotFound
	}
	if ref.AdID != payment.AdID || ref.WebsiteID != payment.WebsiteID {
		return nil, fmt.Errorf("%w: reference does not match payment", port.ErrMalformedReference)
	}

	// terminal-status check before any side effect: a replayed callback
	// for a settled or failed payment is a safe no-op
	if payment.Terminal() {
		s.logger.Info("duplicate callback for terminal payment",
			slog.String("tx_ref", txRef), slog.String("status", string(payment.Status)))
		return &port.CallbackResult{TxRef: txRef, Status: port.CallbackDuplicate}, nil
	}

	verification, err := s.gateway.Verify(ctx, transactionID)
	if err != nil {
		// verification did not complete; the payment stays pending and the
		// gateway may redeliver
		return nil, fmt.Errorf("verify transaction %s: %w", transactionID, err)
	}

	if verification.Amount != payment.Amount || !strings.EqualFold(verification.Currency, payment.Currency) {
		s.logger.Error("verification mismatch",
			slog.String("tx_ref", txRef),
			slog.Int64("expected_amount", payment.Amount),
			slog.Int64("verified_amount", verification.Amount),
			slog.String("expected_currency", payment.Currency),
			slog.String("verified_currency", verification.Currency))
		if err = s.repo.MarkPaymentFailed(ctx, txRef, transactionID); err != nil {
			return nil, err
		}
		return &port.CallbackResult{TxRef: txRef, Status: port.CallbackFailed}, port.ErrVerificationMismatch
	}

	if verification.Status != successfulStatus {
		// a declined or abandoned charge is a normal outcome
		if err = s.repo.MarkPaymentFailed(ctx, txRef, transactionID); err != nil {
			return nil, err
		}
		return &port.CallbackResult{TxRef: txRef, Status: port.CallbackFailed}, nil
	}

	err = s.repo.Settle(ctx, port.SettleParams{
		TxRef:         txRef,
		AdID:          payment.AdID,
		WebsiteID:     payment.WebsiteID,
		OwnerID:       payment.WebOwnerID,
		Amount:        payment.Amount,
		ProviderTxnID: transactionID,
	})
	switch {
	case err == nil:
		return &port.CallbackResult{TxRef: txRef, Status: port.CallbackSuccessful}, nil
	case errors.Is(err, port.ErrConcurrentSettlementLost):
		// the placement was confirmed by another settlement. The fail-mark
		// only touches pending payments: a racing delivery of the same
		// callback finds its payment already successful and is untouched,
		// while a losing second payment attempt ends failed instead of
		// staying pending forever.
		s.logger.Info("settlement lost to concurrent confirmation", slog.String("tx_ref", txRef))
		if err = s.repo.MarkPaymentFailed(ctx, txRef, transactionID); err != nil {
			return nil, err
		}
		return &port.CallbackResult{TxRef: txRef, Status: port.CallbackDuplicate}, nil
	default:
		if failErr := s.repo.MarkPaymentFailed(ctx, txRef, transactionID); failErr != nil {
			s.logger.Error("marking payment failed after aborted settlement",
				slog.String("tx_ref", txRef), slog.Any("error", failErr))
		}
		return &port.CallbackResult{TxRef: txRef, Status: port.CallbackFailed}, err
	}
}

// ApprovePlacement marks a placement approved on behalf of moderation.
func (s *PaymentService) ApprovePlacement(ctx context.Context, adID, websiteID int64) error {
	return s.repo.ApprovePlacement(ctx, adID, websiteID)
}

// RecordView increments a delivery tracker's view count.
func (s *PaymentService) RecordView(ctx context.Context, trackerID int64) (*domain.Tracker, error) {
	return s.repo.RecordView(ctx, trackerID)
}

// GetBalance returns the owner's balance.
func (s *PaymentService) GetBalance(ctx context.Context, ownerID int64) (*domain.Balance, error) {
	return s.repo.GetBalance(ctx, ownerID)
}

// ListTrackers returns the owner's trackers with the aggregate withdrawable
// amount: the sum over pending trackers whose delivered views reached their
// requirement.
func (s *PaymentService) ListTrackers(ctx context.Context, ownerID int64) (*port.TrackerSummary, error) {
	trackers, err := s.repo.ListTrackers(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	summary := &port.TrackerSummary{Trackers: trackers}
	for i := range trackers {
		if trackers[i].Withdrawable() {
			summary.Withdrawable += trackers[i].Amount
		}
	}
	return summary, nil
}
