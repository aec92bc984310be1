package scheduling

import "time"

// AppliesOn reports whether a weekly recurrence hits the given date. Day
// numbering is 0=Sunday through 6=Saturday, matching time.Weekday. A break
// with an empty or missing day set never applies.
func AppliesOn(daysOfWeek []int, date time.Time) bool {
	weekday := int(date.Weekday())
	for _, d := range daysOfWeek {
		if d == weekday {
			return true
		}
	}
	return false
}
