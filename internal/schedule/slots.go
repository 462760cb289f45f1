package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// Slot is a time-of-day interval. Times are HH:MM wall-clock strings; the
// record's time zone is informational and never applied here.
type Slot struct {
	From string `json:"from"`
	To   string `json:"to"`
}

const minutesPerHour = 60

// parseClock converts an HH:MM string into minute-of-day.
func parseClock(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid time %q: bad hour", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q: bad minute", s)
	}
	return h*minutesPerHour + m, nil
}

func formatClock(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/minutesPerHour, minuteOfDay%minutesPerHour)
}

// HourlySlots splits the interval [from, to) into consecutive one-hour
// slots. A remainder shorter than one hour at the tail is dropped, never
// emitted as a short slot; an interval shorter than one hour yields an
// empty sequence.
func HourlySlots(from, to string) ([]Slot, error) {
	start, err := parseClock(from)
	if err != nil {
		return nil, err
	}
	end, err := parseClock(to)
	if err != nil {
		return nil, err
	}

	var slots []Slot
	for cur := start; cur+minutesPerHour <= end; cur += minutesPerHour {
		slots = append(slots, Slot{
			From: formatClock(cur),
			To:   formatClock(cur + minutesPerHour),
		})
	}
	return slots, nil
}
