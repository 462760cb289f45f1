package schedule

import (
	"time"
)

// Template is the raw schedule input: keys are either exact ISO dates
// (authoritative overrides, already expanded) or weekday names (recurring
// intervals to be expanded into hourly slots).
type Template map[string][]Slot

// parsedTemplate indexes a validated template for O(1) lookup per date.
type parsedTemplate struct {
	overrides map[string][]Slot       // ISO date -> verbatim slots
	weekdays  map[time.Weekday][]Slot // weekday -> raw intervals
}

func parseTemplate(input Template) (*parsedTemplate, error) {
	p := &parsedTemplate{
		overrides: make(map[string][]Slot),
		weekdays:  make(map[time.Weekday][]Slot),
	}
	for raw, slots := range input {
		key, err := ParseKey(raw)
		if err != nil {
			return nil, err
		}
		for _, s := range slots {
			if _, err := parseClock(s.From); err != nil {
				return nil, err
			}
			if _, err := parseClock(s.To); err != nil {
				return nil, err
			}
		}
		switch key.Kind {
		case KeyExactDate:
			p.overrides[key.Date.Format(DateLayout)] = slots
		case KeyWeekday:
			p.weekdays[key.Weekday] = slots
		}
	}
	return p, nil
}

// Materialize expands a template into a concrete date -> hourly-slots
// mapping covering days consecutive dates starting at today. For each date
// an exact-date override is copied verbatim; otherwise the weekday intervals
// are expanded via HourlySlots and concatenated in listed order; dates
// matching neither receive no entry at all. The result is a pure function
// of (today, days, input).
func Materialize(today time.Time, days int, input Template) (map[string][]Slot, error) {
	tmpl, err := parseTemplate(input)
	if err != nil {
		return nil, err
	}

	// Normalize to the calendar date in the caller's location.
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	out := make(map[string][]Slot)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)
		dateKey := date.Format(DateLayout)

		if slots, ok := tmpl.overrides[dateKey]; ok {
			out[dateKey] = slots
			continue
		}

		intervals, ok := tmpl.weekdays[date.Weekday()]
		if !ok {
			continue
		}
		daySlots := []Slot{}
		for _, interval := range intervals {
			hourly, err := HourlySlots(interval.From, interval.To)
			if err != nil {
				return nil, err
			}
			daySlots = append(daySlots, hourly...)
		}
		out[dateKey] = daySlots
	}
	return out, nil
}
