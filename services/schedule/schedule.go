package schedule

import (
	"fmt"
	"time"

	"musicschool/models"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// DurationMinutes maps a duration code to its length in minutes.
// Unrecognized codes default to 60.
func DurationMinutes(duree string) int {
	switch duree {
	case models.Duree30Min:
		return 30
	case models.Duree1H:
		return 60
	case models.Duree1H30:
		return 90
	case models.Duree2H:
		return 120
	default:
		return 60
	}
}

// EventWindow combines an ISO date and a clock time into a start instant in
// loc and derives the end instant from the duration code. The widget calls
// it for the summary preview and the endpoint calls it again for the
// authoritative event payload; both sides must agree exactly, so any change
// here changes both.
func EventWindow(date, heure, duree string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+heure, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid lesson date/time %q %q: %w", date, heure, err)
	}
	end := start.Add(time.Duration(DurationMinutes(duree)) * time.Minute)
	return start, end, nil
}
