package port

import "context"

// PaymentGateway is the outbound port to the external payment provider.
// Both calls are blocking network I/O; implementations carry a bounded
// timeout, and callers treat transport failures as retryable rather than
// terminal.
type PaymentGateway interface {
	// CreateCheckout opens a hosted checkout session and returns the
	// redirect handle the payer is sent to.
	CreateCheckout(ctx context.Context, req CheckoutRequest) (*Checkout, error)
	// Verify re-checks a transaction with the provider. The returned
	// amount and currency are compared against the payment's recorded
	// values; the callback's own claims are never trusted.
	Verify(ctx context.Context, transactionID string) (*Verification, error)
}

// CheckoutRequest describes a checkout-creation call.
type CheckoutRequest struct {
	TxRef       string
	Amount      int64
	Currency    string
	RedirectURL string
	Customer    Customer
	Meta        CheckoutMeta
}

// Customer identifies the payer to the gateway.
type Customer struct {
	Email  string
	Phone  string
	UserID string
}

// CheckoutMeta is echoed back by the gateway and ties the checkout to the
// placement being paid for.
type CheckoutMeta struct {
	AdID      int64
	WebsiteID int64
	OwnerID   int64
}

// Checkout is the redirect handle returned by checkout creation.
type Checkout struct {
	RedirectURL string
}

// Verification is the provider's authoritative view of a transaction.
type Verification struct {
	Status   string
	Amount   int64
	Currency string
}
