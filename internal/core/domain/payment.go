package domain

import "time"

// PaymentStatus is the lifecycle state of a checkout attempt. A payment
// starts pending and ends successful or failed; both ends are terminal.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentSuccessful PaymentStatus = "successful"
	PaymentFailed     PaymentStatus = "failed"
)

// Payment is one attempted checkout, keyed by its unique transaction
// reference. Amount and Currency are fixed at initiation time and are the
// ground truth checked against the gateway's verification response.
// Amounts are stored in integer minor units (e.g. cents).
type Payment struct {
	ID            int64
	TxRef         string
	AdID          int64
	WebsiteID     int64
	WebOwnerID    int64
	Amount        int64
	Currency      string
	Status        PaymentStatus
	ProviderTxnID string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Terminal reports whether the payment already reached a final state.
func (p *Payment) Terminal() bool {
	return p.Status != PaymentPending
}
