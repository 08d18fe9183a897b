package booking

import "time"

// normalizeDate truncates date to its "YYYY-MM-DD" prefix (any time
// component is ignored) and validates it as a calendar date.
func normalizeDate(date string) (string, error) {
	if len(date) > 10 {
		date = date[:10]
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", newError(KindInvalidInput, "Please provide date (YYYY-MM-DD)")
	}
	return date, nil
}
