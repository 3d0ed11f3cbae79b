package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekdays(t *testing.T) {
	labels := Weekdays([]string{"2024-01-01", "2024-01-02", "2024-01-03"})

	require.Len(t, labels, 3)
	assert.Equal(t, []string{"Today", "Tue", "Wed"}, labels)
}

func TestWeekdays_FirstIsAlwaysToday(t *testing.T) {
	// 2024-06-15 is a Saturday.
	labels := Weekdays([]string{"2024-06-15", "2024-06-16"})
	assert.Equal(t, []string{"Today", "Sun"}, labels)

	labels = Weekdays([]string{"not a date"})
	assert.Equal(t, []string{"Today"}, labels)
}

func TestWeekdays_FullWeek(t *testing.T) {
	dates := []string{
		"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13",
		"2024-06-14", "2024-06-15", "2024-06-16",
	}
	assert.Equal(t,
		[]string{"Today", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Weekdays(dates),
	)
}

func TestWeekdays_EdgeCases(t *testing.T) {
	assert.Empty(t, Weekdays(nil))
	assert.Equal(t, []string{"Today", ""}, Weekdays([]string{"2024-01-01", "2024/01/02"}))
}
