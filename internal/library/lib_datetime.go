package library

import (
	"time"

	"barescript/internal/value"
)

// datetimePart builds a single-argument accessor over the local time.
func datetimePart(part func(t time.Time) int) *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		dt, ok := asDatetime(a[0])
		if !ok {
			return value.NIL
		}

		return num(part(dt.Local()))
	}}
}

func fnDatetimeDay() *value.Function {
	return datetimePart(func(t time.Time) int { return t.Day() })
}

func fnDatetimeHour() *value.Function {
	return datetimePart(func(t time.Time) int { return t.Hour() })
}

func fnDatetimeMillisecond() *value.Function {
	return datetimePart(func(t time.Time) int {
		return int(value.RoundNumber(float64(t.Nanosecond())/1e6, 0))
	})
}

func fnDatetimeMinute() *value.Function {
	return datetimePart(func(t time.Time) int { return t.Minute() })
}

func fnDatetimeMonth() *value.Function {
	return datetimePart(func(t time.Time) int { return int(t.Month()) })
}

func fnDatetimeSecond() *value.Function {
	return datetimePart(func(t time.Time) int { return t.Second() })
}

func fnDatetimeYear() *value.Function {
	return datetimePart(func(t time.Time) int { return t.Year() })
}

func fnDatetimeISOFormat() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil, value.FALSE)
		dt, ok := asDatetime(a[0])
		if !ok {
			return value.NIL
		}

		if value.Bool(a[1]) {
			return value.NewString(dt.Local().Format(time.DateOnly))
		}
		return value.NewString(value.String(dt))
	}}
}

func fnDatetimeISOParse() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		a := DefaultArgs(args, nil)
		s, ok := asString(a[0])
		if !ok {
			return value.NIL
		}

		return orNull(value.ParseDatetime(s))
	}}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// maxDayOffset bounds the day field, before and after time carries.
const maxDayOffset = 10000

// NormalizeDatetime carries out-of-range fields into the next larger unit.
// Days outside the month roll across month boundaries one month at a time.
// It reports false when the carried day lies beyond maxDayOffset.
func NormalizeDatetime(year, month, day, hour, minute, second, millisecond int) (time.Time, bool) {
	carry := func(v *int, size int, next *int) {
		if *v < 0 || *v >= size {
			extra := floorDiv(*v, size)
			*v -= extra * size
			*next += extra
		}
	}
	carry(&millisecond, 1000, &second)
	carry(&second, 60, &minute)
	carry(&minute, 60, &hour)
	carry(&hour, 24, &day)
	if day < -maxDayOffset || day > maxDayOffset {
		return time.Time{}, false
	}

	if month < 1 || month > 12 {
		extra := floorDiv(month-1, 12)
		month -= extra * 12
		year += extra
	}

	for day < 1 {
		if month == 1 {
			year, month = year-1, 12
		} else {
			month--
		}
		day += value.DaysInMonth(year, month)
	}
	for days := value.DaysInMonth(year, month); day > days; days = value.DaysInMonth(year, month) {
		day -= days
		if month == 12 {
			year, month = year+1, 1
		} else {
			month++
		}
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, millisecond*int(time.Millisecond), time.Local), true
}

func fnDatetimeNew() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		zero := value.NewInt(0)
		a := DefaultArgs(args, nil, nil, nil, zero, zero, zero, zero)
		fields := make([]int, len(a))
		for ix, arg := range a {
			f, ok := asInt(arg)
			if !ok {
				return value.NIL
			}
			fields[ix] = f
		}
		year, day := fields[0], fields[2]
		if year < 100 || day < -maxDayOffset || day > maxDayOffset {
			return value.NIL
		}

		t, ok := NormalizeDatetime(fields[0], fields[1], fields[2], fields[3], fields[4], fields[5], fields[6])
		if !ok {
			return value.NIL
		}
		return value.NewDatetime(t)
	}}
}

func fnDatetimeNow() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		return value.NewDatetime(time.Now())
	}}
}

func fnDatetimeToday() *value.Function {
	return &value.Function{Fn: func(args []value.Value, opts *Options) value.Value {
		y, m, d := time.Now().Date()
		return value.NewDatetime(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
	}}
}
