package domain

import "time"

// Balance is the cumulative earnings record of one website owner. It is
// credited only by settlement and debited only by payout processing.
type Balance struct {
	OwnerID          int64
	TotalEarnings    int64
	AvailableBalance int64
	UpdatedAt        time.Time
}
