package scheduling

import (
	"github.com/clinic/clinic/internal/platform/validation"
)

// Appointment types.
const (
	TypeConsultation = "Consultation"
	TypeFollowUp     = "Follow-up"
	TypeCheckUp      = "Check-up"
	TypeEmergency    = "Emergency"
)

// Appointment statuses. Any status may replace any other.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

var (
	validTypes    = []string{TypeConsultation, TypeFollowUp, TypeCheckUp, TypeEmergency}
	validStatuses = []string{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
)

// Appointment books a patient with a doctor. PatientName and DoctorName are
// copied from the referenced records when the reference is written and are
// not kept in sync afterwards.
type Appointment struct {
	ID          string `json:"id"`
	PatientID   string `json:"patientId" validate:"notblank"`
	PatientName string `json:"patientName"`
	DoctorID    string `json:"doctorId" validate:"notblank"`
	DoctorName  string `json:"doctorName"`
	Date        string `json:"date" validate:"notblank,datetime=2006-01-02"`
	Time        string `json:"time" validate:"notblank,datetime=15:04"`
	Type        string `json:"type" validate:"oneof=Consultation Follow-up Check-up Emergency"`
	Status      string `json:"status" validate:"oneof=Pending Confirmed Completed Cancelled"`
	Notes       string `json:"notes"`
}

// DefaultTime is the slot offered when a booking omits the time.
const DefaultTime = "09:00"

// ApplyDefaults fills the booking form defaults for omitted fields. An
// omitted date is filled by the HTTP layer, which owns the clock.
func (a *Appointment) ApplyDefaults() {
	if a.Time == "" {
		a.Time = DefaultTime
	}
	if a.Type == "" {
		a.Type = TypeConsultation
	}
	if a.Status == "" {
		a.Status = StatusPending
	}
}

func (a *Appointment) Validate() error {
	var v validation.Errors
	v.Struct(a)
	return v.Err()
}

// AppointmentPatch carries a partial appointment update. Names are never
// taken from the patch; they are re-resolved from PatientID and DoctorID.
type AppointmentPatch struct {
	PatientID *string `json:"patientId,omitempty"`
	DoctorID  *string `json:"doctorId,omitempty"`
	Date      *string `json:"date,omitempty"`
	Time      *string `json:"time,omitempty"`
	Type      *string `json:"type,omitempty"`
	Status    *string `json:"status,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

func (ap AppointmentPatch) Validate() error {
	var v validation.Errors
	if ap.PatientID != nil {
		v.Required("patientId", *ap.PatientID)
	}
	if ap.DoctorID != nil {
		v.Required("doctorId", *ap.DoctorID)
	}
	if ap.Date != nil {
		v.Required("date", *ap.Date)
		v.Date("date", *ap.Date)
	}
	if ap.Time != nil {
		v.Required("time", *ap.Time)
		v.Time("time", *ap.Time)
	}
	if ap.Type != nil {
		v.OneOf("type", *ap.Type, validTypes)
	}
	if ap.Status != nil {
		v.OneOf("status", *ap.Status, validStatuses)
	}
	return v.Err()
}

// Apply merges the patch into a. Resolved names are set by the service.
func (ap AppointmentPatch) Apply(a *Appointment) {
	setString(&a.PatientID, ap.PatientID)
	setString(&a.DoctorID, ap.DoctorID)
	setString(&a.Date, ap.Date)
	setString(&a.Time, ap.Time)
	setString(&a.Type, ap.Type)
	setString(&a.Status, ap.Status)
	setString(&a.Notes, ap.Notes)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
