package booking

import "testing"

func TestRateFromPricing(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pricing string
		rate    float64
		ok      bool
	}{
		{"₹500 per hour", 500, true},
		{"500", 500, true},
		{"from 1200 INR per visit", 1200, true},
		{"Rs. 750/hr", 750, true},
		{"", 0, false},
		{"negotiable", 0, false},
	}

	for _, tc := range tests {
		rate, ok := RateFromPricing(tc.pricing)
		if ok != tc.ok || rate != tc.rate {
			t.Errorf("RateFromPricing(%q) = (%v, %v), want (%v, %v)", tc.pricing, rate, ok, tc.rate, tc.ok)
		}
	}
}
