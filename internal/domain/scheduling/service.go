package scheduling

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/memstore"
)

// NameResolver looks up the current display name of a patient or doctor.
// Implementations return an error wrapping identity.ErrReferenceNotFound
// for unknown ids.
type NameResolver interface {
	ResolvePatientName(ctx context.Context, id string) (string, error)
	ResolveDoctorName(ctx context.Context, id string) (string, error)
}

type Service struct {
	appointments AppointmentRepository
	names        NameResolver
	logger       zerolog.Logger
}

func NewService(appt AppointmentRepository, names NameResolver, logger zerolog.Logger) *Service {
	return &Service{appointments: appt, names: names, logger: logger.With().Str("domain", "scheduling").Logger()}
}

// CreateAppointment books a, copying the current patient and doctor names
// into it. Nothing is stored if either reference is unknown.
func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	a.ApplyDefaults()
	if err := a.Validate(); err != nil {
		return err
	}
	patientName, err := s.names.ResolvePatientName(ctx, a.PatientID)
	if err != nil {
		return err
	}
	doctorName, err := s.names.ResolveDoctorName(ctx, a.DoctorID)
	if err != nil {
		return err
	}
	a.PatientName = patientName
	a.DoctorName = doctorName
	if err := s.appointments.Create(ctx, a); err != nil {
		return err
	}
	s.logger.Debug().
		Str("appointment_id", a.ID).
		Str("patient_id", a.PatientID).
		Str("doctor_id", a.DoctorID).
		Msg("appointment created")
	return nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// UpdateAppointment merges patch into the appointment. References carried
// by the patch are resolved before the store is touched; a missing
// appointment makes the call a no-op returning nil, nil.
func (s *Service) UpdateAppointment(ctx context.Context, id string, patch AppointmentPatch) (*Appointment, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	var patientName, doctorName string
	var err error
	if patch.PatientID != nil {
		if patientName, err = s.names.ResolvePatientName(ctx, *patch.PatientID); err != nil {
			return nil, err
		}
	}
	if patch.DoctorID != nil {
		if doctorName, err = s.names.ResolveDoctorName(ctx, *patch.DoctorID); err != nil {
			return nil, err
		}
	}

	a, err := s.appointments.Update(ctx, id, func(a *Appointment) error {
		patch.Apply(a)
		if patch.PatientID != nil {
			a.PatientName = patientName
		}
		if patch.DoctorID != nil {
			a.DoctorName = doctorName
		}
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		s.logger.Debug().Str("appointment_id", id).Msg("update skipped: appointment not found")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("appointment_id", id).Str("status", a.Status).Msg("appointment updated")
	return a, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	err := s.appointments.Delete(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil
	}
	if err == nil {
		s.logger.Debug().Str("appointment_id", id).Msg("appointment deleted")
	}
	return err
}

func (s *Service) ListAppointments(ctx context.Context, f Filter) ([]Appointment, error) {
	all, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}
	return f.Apply(all), nil
}

// ListByDate returns the appointments booked on date.
func (s *Service) ListByDate(ctx context.Context, date string) ([]Appointment, error) {
	return s.ListAppointments(ctx, Filter{Date: date})
}

func (s *Service) CountAppointments(ctx context.Context) (int, error) {
	return s.appointments.Count(ctx)
}
