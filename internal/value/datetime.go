package value

import (
	"regexp"
	"time"
)

const datetimeLayout = "2006-01-02T15:04:05.000-07:00"

var rDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Datetime values are always read in the local time zone.
type Datetime struct {
	Value time.Time
}

func (d *Datetime) Type() Type      { return DATETIME }
func (d *Datetime) Inspect() string { return formatDatetime(d.Value) }

func NewDatetime(t time.Time) *Datetime {
	return &Datetime{Value: t}
}

// Local returns the datetime converted to the local time zone.
func (d *Datetime) Local() time.Time {
	return d.Value.In(time.Local)
}

func formatDatetime(t time.Time) string {
	return t.In(time.Local).Format(datetimeLayout)
}

// ParseDatetime parses an ISO date or date/time string. Date-only strings and
// strings without a zone offset are local times. It returns nil if parsing
// fails.
func ParseDatetime(s string) Value {
	if rDate.MatchString(s) {
		t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			return nil
		}
		return NewDatetime(t)
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05Z07:00"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewDatetime(t.In(time.Local))
		}
	}
	for _, layout := range []string{"2006-01-02T15:04:05", "2006-01-02 15:04:05", "2006-01-02T15:04"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return NewDatetime(t)
		}
	}
	return nil
}

// DaysInMonth returns the number of days of a month (1-12).
func DaysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
