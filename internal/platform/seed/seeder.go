package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/domain/clinical"
	"github.com/clinic/clinic/internal/domain/identity"
	"github.com/clinic/clinic/internal/domain/scheduling"
)

// Stores are the repositories the dataset is written into.
type Stores struct {
	Patients       identity.PatientRepository
	Doctors        identity.DoctorRepository
	Appointments   scheduling.AppointmentRepository
	MedicalRecords clinical.MedicalRecordRepository
}

// Result counts the records written by Load.
type Result struct {
	Patients       int `json:"patients"`
	Doctors        int `json:"doctors"`
	Appointments   int `json:"appointments"`
	MedicalRecords int `json:"medicalRecords"`
}

// Load inserts the dataset with its fixed ids. It fails on the first
// record that cannot be inserted, for example when the stores already
// hold seeded data.
func Load(ctx context.Context, s Stores, logger zerolog.Logger) (Result, error) {
	var res Result
	for _, p := range Patients() {
		if err := s.Patients.Insert(ctx, &p); err != nil {
			return res, fmt.Errorf("seed patient %s: %w", p.ID, err)
		}
		res.Patients++
	}
	for _, d := range Doctors() {
		if err := s.Doctors.Insert(ctx, &d); err != nil {
			return res, fmt.Errorf("seed doctor %s: %w", d.ID, err)
		}
		res.Doctors++
	}
	for _, a := range Appointments() {
		if err := s.Appointments.Insert(ctx, &a); err != nil {
			return res, fmt.Errorf("seed appointment %s: %w", a.ID, err)
		}
		res.Appointments++
	}
	for _, r := range MedicalRecords() {
		if err := s.MedicalRecords.Insert(ctx, &r); err != nil {
			return res, fmt.Errorf("seed medical record %s: %w", r.ID, err)
		}
		res.MedicalRecords++
	}
	logger.Info().
		Int("patients", res.Patients).
		Int("doctors", res.Doctors).
		Int("appointments", res.Appointments).
		Int("medical_records", res.MedicalRecords).
		Msg("seed data loaded")
	return res, nil
}
