package handlers

import (
	"fmt"
	"strings"
	"time"
)

// DateOnly carries calendar dates (birthdates, measurement dates) as
// "2006-01-02" strings on the wire.
type DateOnly time.Time

// UnmarshalJSON parses a "2006-01-02" string.
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	*d = DateOnly(t)
	return nil
}

// MarshalJSON renders the date as a "2006-01-02" string.
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(time.DateOnly) + `"`), nil
}

// Time returns the underlying time value.
func (d DateOnly) Time() time.Time {
	return time.Time(d)
}
