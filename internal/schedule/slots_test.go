package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlySlots_DropsTrailingRemainder(t *testing.T) {
	slots, err := HourlySlots("09:00", "11:30")
	require.NoError(t, err)

	assert.Equal(t, []Slot{
		{From: "09:00", To: "10:00"},
		{From: "10:00", To: "11:00"},
	}, slots)
}

func TestHourlySlots_ShorterThanHourIsEmpty(t *testing.T) {
	slots, err := HourlySlots("09:00", "09:30")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestHourlySlots_ExactHours(t *testing.T) {
	slots, err := HourlySlots("22:00", "23:00")
	require.NoError(t, err)
	assert.Equal(t, []Slot{{From: "22:00", To: "23:00"}}, slots)
}

func TestHourlySlots_NonHourBoundaries(t *testing.T) {
	slots, err := HourlySlots("09:15", "12:00")
	require.NoError(t, err)
	assert.Equal(t, []Slot{
		{From: "09:15", To: "10:15"},
		{From: "10:15", To: "11:15"},
	}, slots)
}

func TestHourlySlots_InvertedIntervalIsEmpty(t *testing.T) {
	slots, err := HourlySlots("14:00", "10:00")
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestHourlySlots_MalformedTime(t *testing.T) {
	_, err := HourlySlots("9am", "11:00")
	assert.Error(t, err)

	_, err = HourlySlots("09:00", "25:00")
	assert.Error(t, err)

	_, err = HourlySlots("09:61", "11:00")
	assert.Error(t, err)
}
