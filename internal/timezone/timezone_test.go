package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus"))

	loc := Location("Mars/Olympus")
	assert.NotNil(t, loc)
	if IsValid(DefaultTimezone) {
		assert.Equal(t, DefaultTimezone, loc.String())
	}
}

func TestTodayIn(t *testing.T) {
	today := TodayIn("UTC")
	assert.False(t, today.IsZero())
	assert.Equal(t, NowIn("UTC").Day(), today.Day)
}
