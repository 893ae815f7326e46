package models

// EventTime mirrors the calendar API's dateTime/timeZone pair.
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone"`
}

// CalendarEvent is the external representation of a created lesson event,
// echoed back to the caller together with the computed window.
type CalendarEvent struct {
	ID          string    `json:"id,omitempty"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Start       EventTime `json:"start"`
	End         EventTime `json:"end"`
	HTMLLink    string    `json:"htmlLink,omitempty"`
}

// BookingResult is the terminal outcome of a booking workflow run.
// EmailSent records whether the confirmation email went out; a false value
// does not make the booking a failure.
type BookingResult struct {
	Reference string         `json:"reference"`
	Event     *CalendarEvent `json:"event"`
	EmailSent bool           `json:"emailSent"`
	Message   string         `json:"message"`
}
