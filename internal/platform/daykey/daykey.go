package daykey

import (
	"fmt"
	"time"
)

// A Key buckets records and snapshots by calendar day. It is the local
// date rendered as "2006-01-02"; comparisons follow string order.
type Key string

const layout = "2006-01-02"

func FromTime(t time.Time) Key {
	return Key(t.Format(layout))
}

func Parse(raw string) (Key, error) {
	if _, err := time.ParseInLocation(layout, raw, time.Local); err != nil {
		return "", fmt.Errorf("parse day key %q: %w", raw, err)
	}
	return Key(raw), nil
}

func (k Key) String() string { return string(k) }

// Time returns local midnight of the day.
func (k Key) Time() time.Time {
	t, err := time.ParseInLocation(layout, string(k), time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

func (k Key) AddDays(n int) Key {
	return FromTime(k.Time().AddDate(0, 0, n))
}

func (k Key) Prev() Key { return k.AddDays(-1) }
func (k Key) Next() Key { return k.AddDays(1) }

// Consecutive reports whether b is the calendar day immediately after a.
func Consecutive(a, b Key) bool {
	return a.Next() == b
}

// SameWeek reports whether both days fall in the same ISO week
// (weeks start on Monday).
func SameWeek(a, b Key) bool {
	ay, aw := a.Time().ISOWeek()
	by, bw := b.Time().ISOWeek()
	return ay == by && aw == bw
}

// SameMonth reports whether both days fall in the same calendar month.
func SameMonth(a, b Key) bool {
	at, bt := a.Time(), b.Time()
	return at.Year() == bt.Year() && at.Month() == bt.Month()
}
