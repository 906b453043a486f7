// Package rtc brings up a battery-backed real-time clock and formats what it reports.
package rtc

import (
	"errors"
	"fmt"
	"time"

	"github.com/ajanata/voltclock-hardware/internal/diag"
)

var (
	ErrNotFound    = errors.New("rtc: not found")
	ErrNoBuildTime = errors.New("rtc: no build time")
)

// Clock is a real-time clock. *ds3231.Device satisfies it.
type Clock interface {
	ReadTime() (time.Time, error)
	SetTime(t time.Time) error
	// IsTimeValid reports false after the oscillator stopped, i.e. the backup battery ran out.
	IsTimeValid() bool
}

// Bringup checks that the clock answers and, if it lost power, seeds it with build.
// It reports whether the clock was seeded. Only a missing clock is returned as an error;
// a failed adjustment is reported on log and the clock is left as it is.
func Bringup(c Clock, build time.Time, log *diag.Logger) (bool, error) {
	if _, err := c.ReadTime(); err != nil {
		log.Println("Couldn't find RTC")
		return false, fmt.Errorf("%w: %w", ErrNotFound, err)
	}

	if c.IsTimeValid() {
		return false, nil
	}

	log.Println("RTC lost power, let's set the time!")
	if build.IsZero() {
		log.Println("rtc: no build time, clock left unset")
		return false, nil
	}
	if err := c.SetTime(build); err != nil {
		log.Println("rtc: adjust: " + err.Error())
		return false, nil
	}
	return true, nil
}

// ParseBuildTime parses the RFC 3339 stamp injected at link time.
func ParseBuildTime(stamp string) (time.Time, error) {
	if stamp == "" {
		return time.Time{}, ErrNoBuildTime
	}
	t, err := time.Parse(time.RFC3339, stamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrNoBuildTime, err)
	}
	return t, nil
}

// Format renders t as the weekday name and an unpadded H:M:S, e.g. "Monday 9:5:30".
func Format(t time.Time) string {
	return fmt.Sprintf("%s %d:%d:%d", t.Weekday(), t.Hour(), t.Minute(), t.Second())
}
