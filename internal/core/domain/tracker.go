package domain

import "time"

// TrackerStatus is the payout-eligibility state of a delivery tracker.
type TrackerStatus string

const (
	TrackerPending   TrackerStatus = "pending"
	TrackerAvailable TrackerStatus = "available"
	TrackerWithdrawn TrackerStatus = "withdrawn"
)

// Tracker gates payout eligibility for one category's share of a settled
// payment on accumulated ad views. ViewsRequired is frozen at creation
// time from the category's visitor-range maximum and never reconciled
// against later category edits.
type Tracker struct {
	ID            int64
	PaymentID     int64
	CategoryID    int64
	OwnerID       int64
	Amount        int64
	ViewsRequired int64
	CurrentViews  int64
	Status        TrackerStatus
	CreatedAt     time.Time
}

// Withdrawable reports whether the tracker's amount counts towards the
// owner's withdrawable total.
func (t *Tracker) Withdrawable() bool {
	return t.Status == TrackerPending && t.CurrentViews >= t.ViewsRequired
}

// SplitEvenly divides amount across n shares. Shares differ by at most the
// integer remainder, which is assigned to the first share so the sum of
// shares always equals amount.
func SplitEvenly(amount int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	shares := make([]int64, n)
	each := amount / int64(n)
	for i := range shares {
		shares[i] = each
	}
	shares[0] += amount % int64(n)
	return shares
}
