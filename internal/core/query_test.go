package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewSortConfig_rejectsUnknownValues: invalid sort parameters fail at
// construction, never at request time.
func TestNewSortConfig_rejectsUnknownValues(t *testing.T) {
	_, err := NewSortConfig("popularity", SortAsc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "popularity")

	_, err = NewSortConfig(SortByPrice, "sideways")
	require.Error(t, err)

	sort, err := NewSortConfig(SortByStartDate, SortDesc)
	require.NoError(t, err)
	assert.Equal(t, SortByStartDate, sort.Field)
	assert.Equal(t, SortDesc, sort.Order)
}

func TestLocationFilter_isZero(t *testing.T) {
	assert.True(t, LocationFilter{}.IsZero())
	assert.False(t, LocationFilter{Country: "Nepal"}.IsZero())
	assert.False(t, LocationFilter{StateProvince: "Kerala"}.IsZero())
}

// TestEvent_locationString picks the most specific fields available.
func TestEvent_locationString(t *testing.T) {
	cases := []struct {
		name string
		loc  *Location
		want string
	}{
		{"nil location", nil, ""},
		{"venue title wins", &Location{Title: "Casa Om", City: "Tulum", Country: "Mexico"}, "Casa Om"},
		{"city and country", &Location{City: "Tulum", Country: "Mexico"}, "Tulum, Mexico"},
		{"state and country", &Location{StateProvince: "Goa", Country: "India"}, "Goa, India"},
		{"country only", &Location{Country: "Nepal"}, "Nepal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Event{Location: tc.loc}.LocationString())
		})
	}
}

func TestEvent_multiDay(t *testing.T) {
	start := NewDate(2026, 5, 1)
	assert.False(t, Event{StartDate: start}.MultiDay())
	assert.False(t, Event{StartDate: start, EndDate: start}.MultiDay())
	assert.True(t, Event{StartDate: start, EndDate: NewDate(2026, 5, 7)}.MultiDay())
}
