package booking

import "musicschool/models"

// Status is the reservation widget's visible state.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// WorkflowEvent drives transitions between statuses.
type WorkflowEvent string

const (
	EventSubmit    WorkflowEvent = "submit"
	EventSucceeded WorkflowEvent = "succeeded"
	EventFailed    WorkflowEvent = "failed"
	EventReset     WorkflowEvent = "reset"
)

// Transition is the pure state function: it returns the next status and
// whether the event is legal in the current one. Submitting while loading
// is the one guarded transition; success and error both reset to idle.
func Transition(s Status, e WorkflowEvent) (Status, bool) {
	switch s {
	case StatusIdle:
		if e == EventSubmit {
			return StatusLoading, true
		}
	case StatusLoading:
		switch e {
		case EventSucceeded:
			return StatusSuccess, true
		case EventFailed:
			return StatusError, true
		}
	case StatusSuccess, StatusError:
		switch e {
		case EventReset:
			return StatusIdle, true
		case EventSubmit:
			// A new submit from a terminal state implies an intermediate reset.
			return StatusLoading, true
		}
	}
	return s, false
}

// FormState is the per-widget form snapshot the workflow owns. A success
// clears it back to defaults; an error preserves it so the user can retry
// without re-entering anything.
type FormState struct {
	Status    Status
	Message   string
	Selection models.CourseSelection
	Student   models.StudentInfo
}

// NewFormState returns the initial widget state.
func NewFormState() FormState {
	return FormState{
		Status:    StatusIdle,
		Selection: models.DefaultCourseSelection(),
	}
}
