package identity

import (
	"github.com/clinic/clinic/internal/platform/validation"
)

// Genders accepted on a patient record. Keep in step with the oneof tag on
// Patient.Gender.
var validGenders = []string{"Male", "Female", "Other"}

// Patient is a registered clinic patient.
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"notblank"`
	Age        int    `json:"age" validate:"gte=0"`
	Gender     string `json:"gender" validate:"oneof=Male Female Other"`
	Phone      string `json:"phone" validate:"notblank"`
	Email      string `json:"email" validate:"notblank"`
	BloodGroup string `json:"bloodGroup" validate:"notblank"`
	Address    string `json:"address" validate:"notblank"`
	LastVisit  string `json:"lastVisit" validate:"omitempty,datetime=2006-01-02"`
}

// Validate checks the fields required to register a patient.
func (p *Patient) Validate() error {
	var v validation.Errors
	v.Struct(p)
	return v.Err()
}

// PatientPatch carries a partial patient update. Nil fields are left untouched.
type PatientPatch struct {
	Name       *string `json:"name,omitempty"`
	Age        *int    `json:"age,omitempty"`
	Gender     *string `json:"gender,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Email      *string `json:"email,omitempty"`
	BloodGroup *string `json:"bloodGroup,omitempty"`
	Address    *string `json:"address,omitempty"`
	LastVisit  *string `json:"lastVisit,omitempty"`
}

// Validate applies the patient rules to the fields present in the patch.
func (pp PatientPatch) Validate() error {
	var v validation.Errors
	if pp.Name != nil {
		v.Required("name", *pp.Name)
	}
	if pp.Age != nil {
		v.NonNegative("age", float64(*pp.Age))
	}
	if pp.Gender != nil {
		v.OneOf("gender", *pp.Gender, validGenders)
	}
	if pp.Phone != nil {
		v.Required("phone", *pp.Phone)
	}
	if pp.Email != nil {
		v.Required("email", *pp.Email)
	}
	if pp.BloodGroup != nil {
		v.Required("bloodGroup", *pp.BloodGroup)
	}
	if pp.Address != nil {
		v.Required("address", *pp.Address)
	}
	if pp.LastVisit != nil {
		v.Date("lastVisit", *pp.LastVisit)
	}
	return v.Err()
}

// Apply merges the patch into p.
func (pp PatientPatch) Apply(p *Patient) {
	setString(&p.Name, pp.Name)
	if pp.Age != nil {
		p.Age = *pp.Age
	}
	setString(&p.Gender, pp.Gender)
	setString(&p.Phone, pp.Phone)
	setString(&p.Email, pp.Email)
	setString(&p.BloodGroup, pp.BloodGroup)
	setString(&p.Address, pp.Address)
	setString(&p.LastVisit, pp.LastVisit)
}

// Doctor is a practitioner that appointments can be booked with.
type Doctor struct {
	ID              string  `json:"id"`
	Name            string  `json:"name" validate:"notblank"`
	Specialization  string  `json:"specialization" validate:"notblank"`
	Qualification   string  `json:"qualification" validate:"notblank"`
	Experience      int     `json:"experience" validate:"gte=0"`
	Phone           string  `json:"phone" validate:"notblank"`
	Email           string  `json:"email" validate:"notblank"`
	Availability    string  `json:"availability" validate:"notblank"`
	ConsultationFee float64 `json:"consultationFee" validate:"gte=0"`
}

// Validate checks the fields required to register a doctor.
func (d *Doctor) Validate() error {
	var v validation.Errors
	v.Struct(d)
	return v.Err()
}

// DoctorPatch carries a partial doctor update.
type DoctorPatch struct {
	Name            *string  `json:"name,omitempty"`
	Specialization  *string  `json:"specialization,omitempty"`
	Qualification   *string  `json:"qualification,omitempty"`
	Experience      *int     `json:"experience,omitempty"`
	Phone           *string  `json:"phone,omitempty"`
	Email           *string  `json:"email,omitempty"`
	Availability    *string  `json:"availability,omitempty"`
	ConsultationFee *float64 `json:"consultationFee,omitempty"`
}

// Validate applies the doctor rules to the fields present in the patch.
func (dp DoctorPatch) Validate() error {
	var v validation.Errors
	if dp.Name != nil {
		v.Required("name", *dp.Name)
	}
	if dp.Specialization != nil {
		v.Required("specialization", *dp.Specialization)
	}
	if dp.Qualification != nil {
		v.Required("qualification", *dp.Qualification)
	}
	if dp.Experience != nil {
		v.NonNegative("experience", float64(*dp.Experience))
	}
	if dp.Phone != nil {
		v.Required("phone", *dp.Phone)
	}
	if dp.Email != nil {
		v.Required("email", *dp.Email)
	}
	if dp.Availability != nil {
		v.Required("availability", *dp.Availability)
	}
	if dp.ConsultationFee != nil {
		v.NonNegative("consultationFee", *dp.ConsultationFee)
	}
	return v.Err()
}

// Apply merges the patch into d.
func (dp DoctorPatch) Apply(d *Doctor) {
	setString(&d.Name, dp.Name)
	setString(&d.Specialization, dp.Specialization)
	setString(&d.Qualification, dp.Qualification)
	if dp.Experience != nil {
		d.Experience = *dp.Experience
	}
	setString(&d.Phone, dp.Phone)
	setString(&d.Email, dp.Email)
	setString(&d.Availability, dp.Availability)
	if dp.ConsultationFee != nil {
		d.ConsultationFee = *dp.ConsultationFee
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
