package port

import (
	"context"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/domain"
)

// PaymentUseCase defines the business operations of the placement payment
// pipeline. This interface is the primary port into the application domain;
// the HTTP adapter talks only to it, and test doubles implement it.
type PaymentUseCase interface {
	// InitiatePayment validates that (AdID, WebsiteID) is eligible for
	// payment, opens a pending payment and returns the gateway's checkout
	// redirect. On gateway failure the pending payment is deleted before
	// the error is surfaced.
	InitiatePayment(ctx context.Context, req InitiateRequest) (*InitiateResponse, error)

	// HandleCallback processes a gateway callback. It independently
	// verifies the transaction, then settles atomically. A callback for an
	// already-terminal payment is a safe no-op reported as "duplicate".
	// Once verification has been attempted the payment is never left
	// pending.
	HandleCallback(ctx context.Context, txRef, transactionID string) (*CallbackResult, error)

	// ApprovePlacement marks a placement approved on behalf of the
	// moderation collaborator.
	ApprovePlacement(ctx context.Context, adID, websiteID int64) error

	// RecordView increments a delivery tracker's view count on behalf of
	// the display-tracking collaborator.
	RecordView(ctx context.Context, trackerID int64) (*domain.Tracker, error)

	// GetBalance returns the owner's balance.
	GetBalance(ctx context.Context, ownerID int64) (*domain.Balance, error)
	// ListTrackers returns the owner's trackers together with the
	// aggregate withdrawable amount.
	ListTrackers(ctx context.Context, ownerID int64) (*TrackerSummary, error)
}

// InitiateRequest carries the payer's checkout intent.
type InitiateRequest struct {
	AdID      int64
	WebsiteID int64
	Amount    int64
	Currency  string
	Email     string
	Phone     string
	UserID    string
}

// InitiateResponse is returned on successful initiation. RedirectURL is the
// hosted checkout page the payer is sent to.
type InitiateResponse struct {
	TxRef       string
	RedirectURL string
}

// Callback outcome labels. Every processed callback ends in exactly one.
const (
	CallbackSuccessful = "successful"
	CallbackFailed     = "failed"
	CallbackDuplicate  = "duplicate"
)

// CallbackResult is the terminal outcome of one callback delivery.
type CallbackResult struct {
	TxRef  string
	Status string
}

// TrackerSummary is the accounting read model consumed by the payout flow:
// all trackers of an owner plus the sum over those currently withdrawable.
type TrackerSummary struct {
	Trackers     []domain.Tracker
	Withdrawable int64
}
