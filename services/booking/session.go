package booking

import (
	"sync"

	"musicschool/models"
)

// Session owns one widget's form state. The re-entrancy guard protects a
// single widget's submit button, not the server: every widget (or request)
// gets its own Session, and unrelated users never queue behind each other.
type Session struct {
	mu    sync.Mutex
	state FormState
}

// NewSession returns a fresh widget session in the idle state.
func NewSession() *Session {
	return &Session{state: NewFormState()}
}

// begin moves the session into loading and snapshots the submitted form.
// A submit while another one is still loading is rejected.
func (s *Session) begin(req models.BookingRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, ok := Transition(s.state.Status, EventSubmit)
	if !ok {
		return ErrSubmissionInProgress
	}
	s.state.Status = next
	s.state.Message = ""
	s.state.Selection = req.Course
	s.state.Student = req.Student
	return nil
}

// succeed clears the form back to defaults.
func (s *Session) succeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok := Transition(s.state.Status, EventSucceeded); ok {
		s.state.Status = next
	}
	s.state.Message = successMessage
	s.state.Selection = models.DefaultCourseSelection()
	s.state.Student = models.StudentInfo{}
}

// fail keeps the entered values so the user can retry without re-typing.
func (s *Session) fail() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok := Transition(s.state.Status, EventFailed); ok {
		s.state.Status = next
	}
	s.state.Message = errorMessage
}

// State returns a snapshot of the widget state.
func (s *Session) State() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Reset returns a terminal-state widget to idle without touching the form
// fields, matching the retry path after an error.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if next, ok := Transition(s.state.Status, EventReset); ok {
		s.state.Status = next
		s.state.Message = ""
	}
}
