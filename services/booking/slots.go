package booking

// timeSlots is the fixed daily catalog: nine contiguous one-hour windows
// from 09:00 to 18:00. The same sequence applies to every provider and
// every date; any slot value outside it is invalid input everywhere.
var timeSlots = []string{
	"09:00-10:00",
	"10:00-11:00",
	"11:00-12:00",
	"12:00-13:00",
	"13:00-14:00",
	"14:00-15:00",
	"15:00-16:00",
	"16:00-17:00",
	"17:00-18:00",
}

// TimeSlots returns the slot catalog in order. The result is a copy.
func TimeSlots() []string {
	out := make([]string, len(timeSlots))
	copy(out, timeSlots)
	return out
}

// ValidSlot reports whether slot belongs to the catalog.
func ValidSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
