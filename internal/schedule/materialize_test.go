package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// monday2026 is a fixed Monday so weekday expectations stay stable.
var monday2026 = time.Date(2026, time.August, 31, 15, 42, 0, 0, time.UTC)

func TestParseKey(t *testing.T) {
	key, err := ParseKey("Monday")
	require.NoError(t, err)
	assert.Equal(t, KeyWeekday, key.Kind)
	assert.Equal(t, time.Monday, key.Weekday)

	key, err = ParseKey("2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, KeyExactDate, key.Kind)
	assert.Equal(t, "2026-08-31", key.Date.Format(DateLayout))

	_, err = ParseKey("monday")
	assert.Error(t, err, "weekday names are case-sensitive English names")

	_, err = ParseKey("next tuesday")
	assert.Error(t, err)
}

func TestMaterialize_WeekdayTemplate(t *testing.T) {
	input := Template{
		"Monday": {{From: "10:00", To: "12:00"}},
	}

	out, err := Materialize(monday2026, 7, input)
	require.NoError(t, err)

	// 7-day horizon starting on a Monday hits exactly one Monday.
	require.Len(t, out, 1)
	assert.Equal(t, []Slot{
		{From: "10:00", To: "11:00"},
		{From: "11:00", To: "12:00"},
	}, out["2026-08-31"])
}

func TestMaterialize_OverrideWinsOverWeekday(t *testing.T) {
	override := []Slot{{From: "07:00", To: "08:00"}}
	input := Template{
		"Monday":     {{From: "10:00", To: "12:00"}},
		"2026-08-31": override,
	}

	out, err := Materialize(monday2026, 7, input)
	require.NoError(t, err)

	// Copied verbatim, never re-expanded.
	assert.Equal(t, override, out["2026-08-31"])
}

func TestMaterialize_UnmatchedDatesAbsent(t *testing.T) {
	input := Template{
		"Friday": {{From: "09:00", To: "10:00"}},
	}

	out, err := Materialize(monday2026, 3, input)
	require.NoError(t, err)

	// Mon..Wed horizon contains no Friday.
	assert.Empty(t, out)
}

func TestMaterialize_ConcatenatesIntervalsInOrder(t *testing.T) {
	input := Template{
		"Monday": {
			{From: "09:00", To: "10:00"},
			{From: "14:00", To: "16:00"},
		},
	}

	out, err := Materialize(monday2026, 1, input)
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{From: "09:00", To: "10:00"},
		{From: "14:00", To: "15:00"},
		{From: "15:00", To: "16:00"},
	}, out["2026-08-31"])
}

func TestMaterialize_WeekdayWithNoFullHourYieldsEmptyList(t *testing.T) {
	input := Template{
		"Monday": {{From: "09:00", To: "09:45"}},
	}

	out, err := Materialize(monday2026, 1, input)
	require.NoError(t, err)

	slots, ok := out["2026-08-31"]
	require.True(t, ok)
	assert.Equal(t, []Slot{}, slots)
}

func TestMaterialize_Deterministic(t *testing.T) {
	input := Template{
		"Monday":     {{From: "10:00", To: "13:00"}},
		"Wednesday":  {{From: "08:30", To: "10:00"}},
		"2026-09-01": {{From: "06:00", To: "07:00"}},
	}

	first, err := Materialize(monday2026, 14, input)
	require.NoError(t, err)
	second, err := Materialize(monday2026, 14, input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMaterialize_RejectsUnknownKeys(t *testing.T) {
	input := Template{
		"Mondays": {{From: "10:00", To: "12:00"}},
	}

	_, err := Materialize(monday2026, 7, input)
	assert.Error(t, err)
}

func TestMaterialize_RejectsMalformedTimes(t *testing.T) {
	input := Template{
		"Monday": {{From: "ten", To: "12:00"}},
	}

	_, err := Materialize(monday2026, 7, input)
	assert.Error(t, err)
}

func TestMaterialize_HorizonLength(t *testing.T) {
	input := Template{
		"Monday":    {{From: "10:00", To: "11:00"}},
		"Tuesday":   {{From: "10:00", To: "11:00"}},
		"Wednesday": {{From: "10:00", To: "11:00"}},
		"Thursday":  {{From: "10:00", To: "11:00"}},
		"Friday":    {{From: "10:00", To: "11:00"}},
		"Saturday":  {{From: "10:00", To: "11:00"}},
		"Sunday":    {{From: "10:00", To: "11:00"}},
	}

	out, err := Materialize(monday2026, DurationDays("2w"), input)
	require.NoError(t, err)
	assert.Len(t, out, 14)

	// The horizon starts today and ends at today+N-1.
	assert.Contains(t, out, "2026-08-31")
	assert.Contains(t, out, "2026-09-13")
	assert.NotContains(t, out, "2026-09-14")
}
