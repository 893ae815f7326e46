package booking

import "fmt"

// Stable error categories surfaced to the endpoint layer.
const (
	CodeInvalidInput    = "invalidInput"
	CodeCalendarFailure = "calendarError"
	CodeInProgress      = "submissionInProgress"
)

// WorkflowError carries a stable category code alongside the underlying
// message. The category decides the HTTP status; the message is diagnostic
// detail only.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewInvalidInputError(err error) error {
	return &WorkflowError{Code: CodeInvalidInput, Message: err.Error()}
}

func NewCalendarError(err error) error {
	return &WorkflowError{Code: CodeCalendarFailure, Message: err.Error()}
}

// ErrSubmissionInProgress rejects re-entrant submits while a booking is
// already loading.
var ErrSubmissionInProgress = &WorkflowError{
	Code:    CodeInProgress,
	Message: "a booking submission is already in progress",
}
