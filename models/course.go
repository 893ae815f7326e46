package models

// Course type codes, as sent by the booking widget.
const (
	TypeIndividuel = "individuel"
	TypeCollectif  = "collectif"
)

// Level codes.
const (
	NiveauDebutant      = "debutant"
	NiveauIntermediaire = "intermediaire"
	NiveauAvance        = "avance"
)

// Duration codes.
const (
	Duree30Min = "30min"
	Duree1H    = "1h"
	Duree1H30  = "1h30"
	Duree2H    = "2h"
)

// Instruments lists the instruments the school teaches.
var Instruments = []string{"Guitare", "Batterie", "Basse"}

// Niveaux lists the selectable levels, in display order.
var Niveaux = []string{NiveauDebutant, NiveauIntermediaire, NiveauAvance}

// Durees lists the selectable lesson durations.
var Durees = []string{Duree30Min, Duree1H, Duree1H30, Duree2H}

// Heures lists the bookable start times.
var Heures = []string{
	"09:00", "10:00", "11:00", "12:00", "13:00", "14:00",
	"15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
}

// CourseSelection is the course part of a booking as chosen in the widget.
// Prix is always recomputed server-side from niveau, duree and type; a
// client-supplied value is never trusted.
type CourseSelection struct {
	Instrument string  `json:"instrument"`
	Type       string  `json:"type"`
	Niveau     string  `json:"niveau"`
	Duree      string  `json:"duree" validate:"required"`
	Prix       float64 `json:"prix"`
	Date       string  `json:"date,omitempty" validate:"required"`
	Heure      string  `json:"heure,omitempty" validate:"required"`
}

// DefaultCourseSelection returns the selection the widget starts from and
// resets to after a successful booking.
func DefaultCourseSelection() CourseSelection {
	return CourseSelection{
		Instrument: "",
		Type:       TypeIndividuel,
		Niveau:     NiveauDebutant,
		Duree:      Duree1H,
		Prix:       0,
	}
}

// StudentInfo identifies the student making a reservation.
type StudentInfo struct {
	Nom    string `json:"nom" validate:"required"`
	Prenom string `json:"prenom" validate:"required"`
	Email  string `json:"email" validate:"required,email"`
}

// BookingRequest is the wire payload for both the calendar-event and the
// confirmation-email endpoints.
type BookingRequest struct {
	Course  CourseSelection `json:"course"`
	Student StudentInfo     `json:"student"`
}

// ContactMessage is the contact-form payload.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}
