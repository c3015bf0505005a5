package availability

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ===============================
// Time Normalization
// ===============================

// InvalidMinutes is the sentinel for anything that could not be parsed.
// Parsing never panics and never returns an error; callers check the sentinel.
const InvalidMinutes = -1

var clockTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)

// TimeToMinutes converts a time representation into minutes since local
// midnight in loc, in [0, 1439].
//
// Accepted inputs:
//   - ISO 8601 datetimes ("2025-03-01T11:30:00+09:00"). These are converted
//     to loc before the minutes are derived, so a UTC caller and a JST caller
//     get the same answer for the same instant.
//   - Bare clock times ("9:00", "11:30", "11:30:00").
//
// Everything else yields InvalidMinutes.
func TimeToMinutes(input string, loc *time.Location) int {
	s := strings.TrimSpace(input)
	if s == "" {
		return InvalidMinutes
	}

	// ISO datetimes carry the date/time separator.
	if strings.Contains(s, "T") {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			// Zone-less datetimes are read as business-local wall time.
			t, err = time.ParseInLocation("2006-01-02T15:04:05", s, loc)
			if err != nil {
				return InvalidMinutes
			}
		}
		local := t.In(loc)
		return local.Hour()*60 + local.Minute()
	}

	m := clockTimeRe.FindStringSubmatch(s)
	if m == nil {
		return InvalidMinutes
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])

	if hour > 23 || minute > 59 {
		return InvalidMinutes
	}

	return hour*60 + minute
}

// MinutesToTime is the inverse of TimeToMinutes for the valid range.
// Outside [0, 1439] it returns "N/A".
func MinutesToTime(minutes int) string {
	if minutes < 0 || minutes > 23*60+59 {
		return "N/A"
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimesEqual reports whether both inputs normalize to the same minute.
// Two unparseable inputs are never equal; a false positive here would make
// distinct slots look identical, so the comparison stays conservative.
func TimesEqual(a, b string, loc *time.Location) bool {
	na := TimeToMinutes(a, loc)
	nb := TimeToMinutes(b, loc)
	return na >= 0 && nb >= 0 && na == nb
}

// TimeDiffMinutes returns the signed difference b-a in minutes.
// ok is false when either side failed to normalize.
func TimeDiffMinutes(a, b string, loc *time.Location) (diff int, ok bool) {
	na := TimeToMinutes(a, loc)
	nb := TimeToMinutes(b, loc)
	if na < 0 || nb < 0 {
		return 0, false
	}
	return nb - na, true
}
