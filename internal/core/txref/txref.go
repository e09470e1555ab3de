// Package txref generates and parses transaction references. A reference
// embeds the ad and website ids so a gateway callback can be correlated to
// its placement without a prior lookup.
package txref

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// Prefix marks references produced by this service.
const Prefix = "YEP"

// Ref is a parsed transaction reference.
type Ref struct {
	Timestamp time.Time
	AdID      int64
	WebsiteID int64
}

// New builds a reference of the form YEP-<unixnano>-<adID>-<websiteID>.
// The nanosecond timestamp plus the unique index on payments.tx_ref keeps
// references globally unique.
func New(adID, websiteID int64) string {
	return fmt.Sprintf("%s-%d-%d-%d", Prefix, time.Now().UnixNano(), adID, websiteID)
}

// Parse strictly decodes a reference. Anything that is not exactly four
// dash-separated fields with the expected prefix and positive numeric ids
// is rejected with port.ErrMalformedReference.
func Parse(s string) (Ref, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 4 || parts[0] != Prefix {
		return Ref{}, fmt.Errorf("%w: %q", port.ErrMalformedReference, s)
	}
	ts, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || ts <= 0 {
		return Ref{}, fmt.Errorf("%w: bad timestamp in %q", port.ErrMalformedReference, s)
	}
	adID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil || adID <= 0 {
		return Ref{}, fmt.Errorf("%w: bad ad id in %q", port.ErrMalformedReference, s)
	}
	websiteID, err := strconv.ParseInt(parts[3], 10, 64)
	if err != nil || websiteID <= 0 {
		return Ref{}, fmt.Errorf("%w: bad website id in %q", port.ErrMalformedReference, s)
	}
	return Ref{
		Timestamp: time.Unix(0, ts),
		AdID:      adID,
		WebsiteID: websiteID,
	}, nil
}
