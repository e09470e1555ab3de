package domain

import "time"

// Category is an ad slot on a website. VisitorMin and VisitorMax describe
// the expected monthly audience of the slot; both must be set before the
// category may take part in settlement. OwnerID is the owning website's
// owner, resolved by join.
type Category struct {
	ID         int64
	WebsiteID  int64
	OwnerID    int64
	Name       string
	VisitorMin *int64
	VisitorMax *int64
	CreatedAt  time.Time
}

// HasVisitorRange reports whether both bounds of the visitor range are set.
func (c *Category) HasVisitorRange() bool {
	return c.VisitorMin != nil && c.VisitorMax != nil
}
