// Package models defines the data structures for the credit plan engine.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"credit-plan-engine/internal/utils"
)

// Amount is a monetary (or rate) input that accepts either a JSON number
// or a string, where form inputs may use "," as the decimal separator.
type Amount float64

// UnmarshalJSON implements json.Unmarshaler.
func (a *Amount) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
		}
		v, err := ParseAmount(s)
		if err != nil {
			return err
		}
		*a = Amount(v)
		return nil
	}

	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidAmount, data)
	}
	*a = Amount(v)
	return nil
}

// ParseAmount parses a raw monetary string, normalizing "," to "." before
// conversion. Non-finite or unparseable input fails with ErrInvalidAmount.
func ParseAmount(raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !utils.IsFinite(v) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	return v, nil
}
