package domain

import "time"

// Placement is the association of one advertisement with one target website
// and the category slots chosen on it. Its lifecycle is
// unsubmitted → approved → confirmed; approval comes from moderation,
// confirmation only from payment settlement. Once confirmed it never
// reverts.
type Placement struct {
	ID          int64
	AdID        int64
	WebsiteID   int64
	Approved    bool
	ApprovedAt  *time.Time
	Confirmed   bool
	ConfirmedAt *time.Time
	CreatedAt   time.Time
}

// Payable reports whether the placement may enter the payment flow.
func (p *Placement) Payable() bool {
	return p.Approved && !p.Confirmed
}
