package domain

import "time"

// Website is a publisher property carrying ad slots (categories).
type Website struct {
	ID        int64
	OwnerID   int64
	Name      string
	URL       string
	CreatedAt time.Time
}

// Advertisement is an advertiser's ad. Its creative assets and general CRUD
// live outside this service; here it is referenced by placements and by the
// selected-ad sets of categories.
type Advertisement struct {
	ID           int64
	AdvertiserID int64
	Name         string
	CreatedAt    time.Time
}
