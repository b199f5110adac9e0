package validation

import (
	"encoding/json"
	"time"
)

var dateLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"}

// Date accepts either an RFC 3339 timestamp or a calendar date and
// normalises it to a time.Time.
type Date struct {
	time.Time
}

// ParseDate tries each accepted layout in turn.
func ParseDate(s string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		t, perr := time.Parse(layout, s)
		if perr == nil {
			return t, nil
		}
		err = perr
	}
	return time.Time{}, err
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &json.UnmarshalTypeError{Value: string(b), Type: dateType}
	}
	t, err := ParseDate(s)
	if err != nil {
		return &json.UnmarshalTypeError{Value: "string", Type: dateType}
	}
	d.Time = t
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time)
}
