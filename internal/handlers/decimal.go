package handlers

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Decimal carries two-decimal quantities (measurement values, heights) as
// strings on the wire, like "82.50". It accepts bare JSON numbers too.
type Decimal float64

// UnmarshalJSON parses either "82.50" or 82.5.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return fmt.Errorf("invalid decimal %q", string(data))
	}

	if dot := strings.IndexByte(s, '.'); dot >= 0 && len(s)-dot-1 > 2 {
		return fmt.Errorf("no more than two decimal places allowed: %q", s)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid decimal %q", s)
	}

	*d = Decimal(f)
	return nil
}

// MarshalJSON renders the value with exactly two decimal places.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return json.Marshal(strconv.FormatFloat(float64(d), 'f', 2, 64))
}
