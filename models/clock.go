package models

import (
	"fmt"
	"time"
)

// clockLayout is the 12-hour wire format for opening and closing times,
// e.g. "09:00 AM".
const clockLayout = "03:04 PM"

// ParseClock converts a 12-hour clock string into the stored time value.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(clockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: expected hh:mm AM/PM", value)
	}
	return t, nil
}

// FormatClock renders a stored time value back into the 12-hour wire format.
func FormatClock(t time.Time) string {
	return t.Format(clockLayout)
}
