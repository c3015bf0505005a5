package timezone

import "time"

const DefaultTimezone = "Asia/Tokyo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// ===============================
// Business Clock
// ===============================

// Clock is the single source of "now" for every surface that computes
// today/tomorrow labels. Handlers and use cases receive a Clock instead of
// calling time.Now, so one request always resolves one calendar day.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type businessClock struct {
	loc *time.Location
}

// NewClock returns a Clock pinned to the given business timezone.
// An invalid timezone falls back to Asia/Tokyo.
func NewClock(tz string) Clock {
	return businessClock{loc: Location(tz)}
}

func (c businessClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c businessClock) Location() *time.Location {
	return c.loc
}

// ===============================
// Fixed Clock (tests)
// ===============================

type fixedClock struct {
	at time.Time
}

// Fixed returns a Clock frozen at the given instant, in that instant's location.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

func (c fixedClock) Now() time.Time {
	return c.at
}

func (c fixedClock) Location() *time.Location {
	return c.at.Location()
}
