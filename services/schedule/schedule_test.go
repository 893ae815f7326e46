package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicschool/models"
)

func TestDurationMinutes(t *testing.T) {
	assert.Equal(t, 30, DurationMinutes(models.Duree30Min))
	assert.Equal(t, 60, DurationMinutes(models.Duree1H))
	assert.Equal(t, 90, DurationMinutes(models.Duree1H30))
	assert.Equal(t, 120, DurationMinutes(models.Duree2H))

	// Unrecognized codes default to one hour.
	assert.Equal(t, 60, DurationMinutes("45min"))
	assert.Equal(t, 60, DurationMinutes(""))
}

func TestEventWindowDurations(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	for _, duree := range models.Durees {
		start, end, err := EventWindow("2024-06-01", "10:00", duree, loc)
		require.NoError(t, err)
		assert.Equal(t, time.Duration(DurationMinutes(duree))*time.Minute, end.Sub(start), "duration %s", duree)
		assert.Equal(t, loc, start.Location())
		assert.Equal(t, loc, end.Location())
	}
}

func TestEventWindowScenario(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	start, end, err := EventWindow("2024-06-01", "10:00", models.Duree1H30, loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 6, 1, 10, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2024, 6, 1, 11, 30, 0, 0, loc), end)
}

func TestEventWindowConfigurableTimezone(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	start, _, err := EventWindow("2024-06-01", "10:00", models.Duree1H, loc)
	require.NoError(t, err)
	assert.Equal(t, loc, start.Location())
}

func TestEventWindowMalformedInput(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	cases := []struct{ date, heure string }{
		{"", "10:00"},
		{"2024-06-01", ""},
		{"01/06/2024", "10:00"},
		{"2024-06-01", "10h00"},
		{"not-a-date", "10:00"},
	}
	for _, tc := range cases {
		_, _, err := EventWindow(tc.date, tc.heure, models.Duree1H, loc)
		assert.Error(t, err, "date=%q heure=%q", tc.date, tc.heure)
	}
}
