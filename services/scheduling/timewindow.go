package scheduling

import (
	"regexp"
	"strconv"
	"time"
)

var clockRe = regexp.MustCompile(`^(\d{2}):(\d{2})$`)

// ToMinutes parses an "HH:mm" wall-clock string into minutes from midnight.
func ToMinutes(hhmm string) (int, error) {
	m := clockRe.FindStringSubmatch(hhmm)
	if m == nil {
		return 0, &ValidationError{Field: "time", Reason: "must match HH:mm, got " + strconv.Quote(hhmm)}
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 {
		return 0, &ValidationError{Field: "time", Reason: "hour out of range in " + strconv.Quote(hhmm)}
	}
	if minute > 59 {
		return 0, &ValidationError{Field: "time", Reason: "minute out of range in " + strconv.Quote(hhmm)}
	}
	return hour*60 + minute, nil
}

// MinuteOfDay returns t's wall-clock position as minutes from midnight.
func MinuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// Overlaps reports whether two half-open minute intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Intervals that merely touch at an endpoint do not
// overlap, so adjacent slots are never in conflict.
func Overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// OverlapsAt is Overlaps for absolute timestamps, with the same half-open
// semantics.
func OverlapsAt(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// atMinute anchors a minute-of-day on the given date, in the date's location.
func atMinute(date time.Time, minute int) time.Time {
	year, month, day := date.Date()
	return time.Date(year, month, day, minute/60, minute%60, 0, 0, date.Location())
}
