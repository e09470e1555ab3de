package txref

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

func TestRoundTrip(t *testing.T) {
	s := New(42, 7)
	ref, err := Parse(s)
	require.NoError(t, err)
	assert.Equal(t, int64(42), ref.AdID)
	assert.Equal(t, int64(7), ref.WebsiteID)
	assert.False(t, ref.Timestamp.IsZero())
}

func TestUniqueBetweenCalls(t *testing.T) {
	// nanosecond timestamps make consecutive refs for the same pair differ
	a := New(1, 1)
	b := New(1, 1)
	assert.NotEqual(t, a, b)
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":             "",
		"garbage":           "not-a-ref",
		"wrong prefix":      "PAY-1724900000000-1-2",
		"missing field":     "YEP-1724900000000-1",
		"extra field":       "YEP-1724900000000-1-2-3",
		"non-numeric ts":    "YEP-abc-1-2",
		"non-numeric ad":    "YEP-1724900000000-x-2",
		"zero ad id":        "YEP-1724900000000-0-2",
		"zero website id":   "YEP-1724900000000-1-0",
		"negative-ish form": "YEP--1-1-2",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(in)
			assert.ErrorIs(t, err, port.ErrMalformedReference)
		})
	}
}
