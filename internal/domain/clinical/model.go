package clinical

import (
	"github.com/clinic/clinic/internal/platform/validation"
)

// MedicalRecord is a visit note. PatientName is copied from the patient
// when the reference is written. DoctorName is free text unless the write
// names a doctor by id, in which case the doctor's current name is copied.
type MedicalRecord struct {
	ID           string `json:"id"`
	PatientID    string `json:"patientId" validate:"notblank"`
	PatientName  string `json:"patientName"`
	DoctorName   string `json:"doctorName"`
	Date         string `json:"date" validate:"notblank,datetime=2006-01-02"`
	Diagnosis    string `json:"diagnosis" validate:"notblank"`
	Prescription string `json:"prescription" validate:"notblank"`
	Tests        string `json:"tests"`
	Notes        string `json:"notes"`
	FollowUpDate string `json:"followUpDate" validate:"omitempty,datetime=2006-01-02"`
}

// PendingFollowUp reports whether the record has no follow-up scheduled.
func (r *MedicalRecord) PendingFollowUp() bool {
	return r.FollowUpDate == ""
}

func (r *MedicalRecord) Validate() error {
	return r.validate(true)
}

func (r *MedicalRecord) validate(needDoctorName bool) error {
	var v validation.Errors
	v.Struct(r)
	// DoctorName is only required when no doctor id will resolve it.
	if needDoctorName {
		v.Required("doctorName", r.DoctorName)
	}
	return v.Err()
}

// NewRecord is the body of a create request. DoctorID is only used to
// resolve DoctorName and is not stored.
type NewRecord struct {
	MedicalRecord
	DoctorID string `json:"doctorId,omitempty"`
}

// MedicalRecordPatch carries a partial record update. DoctorID, when set,
// replaces DoctorName with the referenced doctor's name.
type MedicalRecordPatch struct {
	PatientID    *string `json:"patientId,omitempty"`
	DoctorID     *string `json:"doctorId,omitempty"`
	DoctorName   *string `json:"doctorName,omitempty"`
	Date         *string `json:"date,omitempty"`
	Diagnosis    *string `json:"diagnosis,omitempty"`
	Prescription *string `json:"prescription,omitempty"`
	Tests        *string `json:"tests,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	FollowUpDate *string `json:"followUpDate,omitempty"`
}

func (rp MedicalRecordPatch) Validate() error {
	var v validation.Errors
	if rp.PatientID != nil {
		v.Required("patientId", *rp.PatientID)
	}
	if rp.DoctorID != nil {
		v.Required("doctorId", *rp.DoctorID)
	} else if rp.DoctorName != nil {
		v.Required("doctorName", *rp.DoctorName)
	}
	if rp.Date != nil {
		v.Required("date", *rp.Date)
		v.Date("date", *rp.Date)
	}
	if rp.Diagnosis != nil {
		v.Required("diagnosis", *rp.Diagnosis)
	}
	if rp.Prescription != nil {
		v.Required("prescription", *rp.Prescription)
	}
	if rp.FollowUpDate != nil {
		v.Date("followUpDate", *rp.FollowUpDate)
	}
	return v.Err()
}

// Apply merges the patch into r. Resolved names are set by the service.
func (rp MedicalRecordPatch) Apply(r *MedicalRecord) {
	setString(&r.PatientID, rp.PatientID)
	setString(&r.DoctorName, rp.DoctorName)
	setString(&r.Date, rp.Date)
	setString(&r.Diagnosis, rp.Diagnosis)
	setString(&r.Prescription, rp.Prescription)
	setString(&r.Tests, rp.Tests)
	setString(&r.Notes, rp.Notes)
	setString(&r.FollowUpDate, rp.FollowUpDate)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
