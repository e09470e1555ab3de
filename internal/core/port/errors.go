package port

import "errors"

// Payment pipeline error taxonomy. Client-input errors are returned
// synchronously from initiation; gateway errors carry the external
// dependency class; ErrConcurrentSettlementLost is the benign outcome of a
// duplicate callback losing the conditional confirm.
var (
	ErrAlreadySettled           = errors.New("placement already settled")
	ErrNotApproved              = errors.New("placement not approved")
	ErrInvalidCategoryConfig    = errors.New("invalid category configuration")
	ErrInvalidAmount            = errors.New("invalid amount")
	ErrPaymentNotFound          = errors.New("payment not found")
	ErrPlacementNotFound        = errors.New("placement not found")
	ErrTrackerNotFound          = errors.New("tracker not found")
	ErrMalformedReference       = errors.New("malformed transaction reference")
	ErrGatewayUnavailable       = errors.New("payment gateway unavailable")
	ErrGatewayRejected          = errors.New("payment gateway rejected request")
	ErrVerificationMismatch     = errors.New("verification amount or currency mismatch")
	ErrConcurrentSettlementLost = errors.New("settlement lost to concurrent confirmation")
)
