package identity

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/memstore"
)

type Service struct {
	patients PatientRepository
	doctors  DoctorRepository
	logger   zerolog.Logger
}

func NewService(p PatientRepository, d DoctorRepository, logger zerolog.Logger) *Service {
	return &Service{patients: p, doctors: d, logger: logger.With().Str("domain", "identity").Logger()}
}

// -- Patient --

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if err := s.patients.Create(ctx, p); err != nil {
		return err
	}
	s.logger.Debug().Str("patient_id", p.ID).Msg("patient created")
	return nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// UpdatePatient merges patch into the patient with the given id. A missing
// patient is not an error: the call is a no-op and returns nil, nil.
func (s *Service) UpdatePatient(ctx context.Context, id string, patch PatientPatch) (*Patient, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	p, err := s.patients.Update(ctx, id, func(p *Patient) error {
		patch.Apply(p)
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		s.logger.Debug().Str("patient_id", id).Msg("update skipped: patient not found")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("patient_id", id).Msg("patient updated")
	return p, nil
}

// DeletePatient removes the patient if present. Appointments and medical
// records that reference the patient are left as they are.
func (s *Service) DeletePatient(ctx context.Context, id string) error {
	err := s.patients.Delete(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil
	}
	if err == nil {
		s.logger.Debug().Str("patient_id", id).Msg("patient deleted")
	}
	return err
}

func (s *Service) ListPatients(ctx context.Context) ([]Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) SearchPatients(ctx context.Context, query string) ([]Patient, error) {
	all, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}
	return SearchPatients(all, query), nil
}

func (s *Service) CountPatients(ctx context.Context) (int, error) {
	return s.patients.Count(ctx)
}

// -- Doctor --

func (s *Service) CreateDoctor(ctx context.Context, d *Doctor) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := s.doctors.Create(ctx, d); err != nil {
		return err
	}
	s.logger.Debug().Str("doctor_id", d.ID).Msg("doctor created")
	return nil
}

func (s *Service) GetDoctor(ctx context.Context, id string) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

// UpdateDoctor merges patch into the doctor with the given id. Renaming a
// doctor does not touch names already copied into appointments.
func (s *Service) UpdateDoctor(ctx context.Context, id string, patch DoctorPatch) (*Doctor, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	d, err := s.doctors.Update(ctx, id, func(d *Doctor) error {
		patch.Apply(d)
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		s.logger.Debug().Str("doctor_id", id).Msg("update skipped: doctor not found")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("doctor_id", id).Msg("doctor updated")
	return d, nil
}

func (s *Service) DeleteDoctor(ctx context.Context, id string) error {
	err := s.doctors.Delete(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil
	}
	if err == nil {
		s.logger.Debug().Str("doctor_id", id).Msg("doctor deleted")
	}
	return err
}

func (s *Service) ListDoctors(ctx context.Context) ([]Doctor, error) {
	return s.doctors.List(ctx)
}

func (s *Service) CountDoctors(ctx context.Context) (int, error) {
	return s.doctors.Count(ctx)
}
