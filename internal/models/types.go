package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The admin API is loose about scalar types: flags arrive as "1"/"0" or
// booleans, counters sometimes as strings. These types coerce on decode and
// nothing more.

// Flag is a boolean-like field ("1"/"0", true/false, 1/0).
type Flag bool

func (f *Flag) UnmarshalJSON(data []byte) error {
	s := strings.ToLower(strings.Trim(string(bytes.TrimSpace(data)), `"`))
	switch s {
	case "1", "true", "yes":
		*f = true
	case "0", "false", "no", "", "null":
		*f = false
	default:
		return fmt.Errorf("flag: unexpected value %s", data)
	}
	return nil
}

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte(`"1"`), nil
	}
	return []byte(`"0"`), nil
}

// Bool is a convenience for templates.
func (f Flag) Bool() bool { return bool(f) }

// ID is an identifier that may be encoded as a JSON string or number.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Count is an integer counter that tolerates string encoding.
type Count int

func (c *Count) UnmarshalJSON(data []byte) error {
	n, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("count: %w", err)
	}
	*c = Count(n)
	return nil
}

// Amount is a decimal figure (fares, earnings, ratings) that tolerates string encoding.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	n, err := parseNumber(data)
	if err != nil {
		return fmt.Errorf("amount: %w", err)
	}
	*a = Amount(n)
	return nil
}

func parseNumber(data []byte) (float64, error) {
	s := strings.Trim(string(bytes.TrimSpace(data)), `"`)
	if s == "" || s == "null" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// Timestamp keeps the API's ISO string as-is; Time parses it on demand.
type Timestamp string

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Time returns the zero time when the value is empty or unparseable.
func (t Timestamp) Time() time.Time {
	parsed, _ := ParseTime(string(t))
	return parsed
}

func (t Timestamp) String() string { return string(t) }

// ParseTime accepts the timestamp shapes the admin API emits.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
