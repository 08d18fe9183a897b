package booking

import (
	"regexp"
	"strconv"
)

var rateRe = regexp.MustCompile(`\d+`)

// RateFromPricing extracts the authoritative hourly rate from a provider's
// free-text pricing (e.g. "₹500 per hour"): the first integer run in the
// text. Returns false when the text has none. Client-supplied amounts are
// validated against this rate rather than trusted.
func RateFromPricing(pricing string) (float64, bool) {
	match := rateRe.FindString(pricing)
	if match == "" {
		return 0, false
	}
	rate, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return rate, true
}
