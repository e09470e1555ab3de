package port

import (
	"context"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/domain"
)

// LedgerRepository is the persistence port of the placement ledger. It is
// an outbound port in hexagonal architecture. Implementations must be
// concurrency-safe; Settle must be atomic and isolated across every entity
// it touches, since its conditional placement confirm is the sole guard
// against double-settlement.
type LedgerRepository interface {
	// GetPlacement returns the placement for (adID, websiteID), or nil
	// when none exists.
	GetPlacement(ctx context.Context, adID, websiteID int64) (*domain.Placement, error)
	// GetPlacementCategories returns the categories chosen on a placement,
	// each with its website owner resolved.
	GetPlacementCategories(ctx context.Context, placementID int64) ([]domain.Category, error)
	// ApprovePlacement marks a placement approved. It is the entry point
	// for the moderation collaborator.
	ApprovePlacement(ctx context.Context, adID, websiteID int64) error

	// CreatePayment inserts a pending payment row.
	CreatePayment(ctx context.Context, p *domain.Payment) error
	// DeletePayment removes a payment by tx_ref. Used as the compensating
	// action when checkout creation fails after the row was inserted.
	DeletePayment(ctx context.Context, txRef string) error
	// GetPaymentByTxRef returns the payment for txRef, or nil when absent.
	GetPaymentByTxRef(ctx context.Context, txRef string) (*domain.Payment, error)
	// MarkPaymentFailed moves a pending payment to failed. Terminal
	// payments are left untouched.
	MarkPaymentFailed(ctx context.Context, txRef, providerTxnID string) error

	// Settle atomically confirms the placement, attaches the ad to each
	// touched category, credits the owner's balance, creates one delivery
	// tracker per category and marks the payment successful. It returns
	// ErrConcurrentSettlementLost when the placement was confirmed by a
	// concurrent settlement of the same pair.
	Settle(ctx context.Context, params SettleParams) error

	// GetBalance returns the owner's balance; owners without a row read as
	// a zero balance.
	GetBalance(ctx context.Context, ownerID int64) (*domain.Balance, error)
	// ListTrackers returns all delivery trackers belonging to an owner.
	ListTrackers(ctx context.Context, ownerID int64) ([]domain.Tracker, error)
	// RecordView increments a tracker's view count on behalf of the
	// display-tracking collaborator.
	RecordView(ctx context.Context, trackerID int64) (*domain.Tracker, error)
}

// SettleParams carries the verified payment facts into the settlement
// transaction. Categories are re-loaded and re-validated inside the
// transaction, not passed in, since time has passed since initiation.
type SettleParams struct {
	TxRef         string
	AdID          int64
	WebsiteID     int64
	OwnerID       int64
	Amount        int64
	ProviderTxnID string
}
