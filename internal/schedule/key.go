package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date format used for schedule keys.
const DateLayout = "2006-01-02"

// KeyKind distinguishes the two legal forms of a schedule key.
type KeyKind int

const (
	// KeyExactDate is an exact-date override ("2026-08-29"). Its slots are
	// stored verbatim and always win over the weekday template.
	KeyExactDate KeyKind = iota
	// KeyWeekday is a recurring weekday template ("Monday").
	KeyWeekday
)

// Key is the parsed form of a schedule map key. The input format allows
// either an ISO date or an English weekday name; parsing up front removes
// the string-matching ambiguity from the materializer.
type Key struct {
	Kind    KeyKind
	Date    time.Time    // valid when Kind == KeyExactDate
	Weekday time.Weekday // valid when Kind == KeyWeekday
}

var weekdaysByName = map[string]time.Weekday{
	"Sunday":    time.Sunday,
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// ParseKey classifies a raw schedule key. Keys that are neither an ISO date
// nor a weekday name are rejected rather than silently ignored.
func ParseKey(s string) (Key, error) {
	if wd, ok := weekdaysByName[s]; ok {
		return Key{Kind: KeyWeekday, Weekday: wd}, nil
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return Key{Kind: KeyExactDate, Date: d}, nil
	}
	return Key{}, fmt.Errorf("invalid schedule key %q: expected YYYY-MM-DD or a weekday name", s)
}
