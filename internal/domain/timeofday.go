package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// TimeOfDay is a clock time within a single day, stored as minutes since
// midnight. It maps to a Postgres TIME column and serializes as "HH:MM".
type TimeOfDay int

// ParseTimeOfDay parses a strict "HH:MM" string.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
		}
	}

	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	if hours > 23 || minutes > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}

	return TimeOfDay(hours*60 + minutes), nil
}

func (t TimeOfDay) Hours() int   { return int(t) / 60 }
func (t TimeOfDay) Minutes() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours(), t.Minutes())
}

// AddMinutes returns the time shifted forward, wrapping at midnight.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	const day = 24 * 60
	v := (int(t) + m) % day
	if v < 0 {
		v += day
	}
	return TimeOfDay(v)
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner for TIME columns.
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = 0
		return nil
	case time.Time:
		*t = TimeOfDay(v.Hour()*60 + v.Minute())
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into TimeOfDay", src)
	}
}

func (t *TimeOfDay) scanString(s string) error {
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeOfDay) Value() (driver.Value, error) {
	return fmt.Sprintf("%02d:%02d:00", t.Hours(), t.Minutes()), nil
}
