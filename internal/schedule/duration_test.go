package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDurationDays_KnownCodes(t *testing.T) {
	cases := map[string]int{
		"1w": 7,
		"2w": 14,
		"3w": 21,
		"1m": 30,
		"2m": 60,
	}
	for code, want := range cases {
		assert.Equal(t, want, DurationDays(code), "code %s", code)
	}
}

func TestDurationDays_UnknownCodeDefaultsToWeek(t *testing.T) {
	assert.Equal(t, 7, DurationDays(""))
	assert.Equal(t, 7, DurationDays("5y"))
	assert.Equal(t, 7, DurationDays("1W"))
}
