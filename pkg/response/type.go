package response

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Resp is the standard JSON response body.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// Date is a date that marshals as DateFormat.
type Date time.Time

// MarshalJSON implements json.Marshaler for Date.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateFormat))
}

// DateTime is a datetime that marshals as DateTimeFormat and unmarshals from
// either DateTimeFormat or RFC3339, so clients can send whichever they have.
type DateTime time.Time

// MarshalJSON implements json.Marshaler for DateTime.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}

// UnmarshalJSON implements json.Unmarshaler for DateTime.
func (d *DateTime) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		*d = DateTime(time.Time{})
		return nil
	}
	for _, layout := range []string{DateTimeFormat, time.RFC3339, DateFormat} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			*d = DateTime(t)
			return nil
		}
	}
	return fmt.Errorf("unsupported datetime %q", raw)
}
