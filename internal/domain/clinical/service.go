package clinical

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clinic/clinic/internal/platform/memstore"
)

// NameResolver looks up the current display name of a patient or doctor.
type NameResolver interface {
	ResolvePatientName(ctx context.Context, id string) (string, error)
	ResolveDoctorName(ctx context.Context, id string) (string, error)
}

type Service struct {
	records MedicalRecordRepository
	names   NameResolver
	logger  zerolog.Logger
}

func NewService(records MedicalRecordRepository, names NameResolver, logger zerolog.Logger) *Service {
	return &Service{records: records, names: names, logger: logger.With().Str("domain", "clinical").Logger()}
}

// CreateRecord stores a new medical record. The patient name is always
// resolved from PatientID; the doctor name is resolved from DoctorID when
// one is given and taken as written otherwise.
func (s *Service) CreateRecord(ctx context.Context, in *NewRecord) (*MedicalRecord, error) {
	rec := in.MedicalRecord
	if err := rec.validate(in.DoctorID == ""); err != nil {
		return nil, err
	}
	patientName, err := s.names.ResolvePatientName(ctx, rec.PatientID)
	if err != nil {
		return nil, err
	}
	rec.PatientName = patientName
	if in.DoctorID != "" {
		if rec.DoctorName, err = s.names.ResolveDoctorName(ctx, in.DoctorID); err != nil {
			return nil, err
		}
	}
	if err := s.records.Create(ctx, &rec); err != nil {
		return nil, err
	}
	s.logger.Debug().Str("record_id", rec.ID).Str("patient_id", rec.PatientID).Msg("medical record created")
	return &rec, nil
}

func (s *Service) GetRecord(ctx context.Context, id string) (*MedicalRecord, error) {
	return s.records.GetByID(ctx, id)
}

// UpdateRecord merges patch into the record. A missing record makes the
// call a no-op returning nil, nil.
func (s *Service) UpdateRecord(ctx context.Context, id string, patch MedicalRecordPatch) (*MedicalRecord, error) {
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

	rec, err := s.records.Update(ctx, id, func(r *MedicalRecord) error {
		patch.Apply(r)
		if patch.PatientID != nil {
			r.PatientName = patientName
		}
		if patch.DoctorID != nil {
			r.DoctorName = doctorName
		}
		return nil
	})
	if errors.Is(err, memstore.ErrNotFound) {
		s.logger.Debug().Str("record_id", id).Msg("update skipped: medical record not found")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debug().Str("record_id", id).Msg("medical record updated")
	return rec, nil
}

func (s *Service) DeleteRecord(ctx context.Context, id string) error {
	err := s.records.Delete(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return nil
	}
	if err == nil {
		s.logger.Debug().Str("record_id", id).Msg("medical record deleted")
	}
	return err
}

func (s *Service) ListRecords(ctx context.Context) ([]MedicalRecord, error) {
	return s.records.List(ctx)
}

// SearchRecords filters the current records by query and, when patientID is
// non-empty, by patient.
func (s *Service) SearchRecords(ctx context.Context, query, patientID string) ([]MedicalRecord, error) {
	all, err := s.records.List(ctx)
	if err != nil {
		return nil, err
	}
	if patientID != "" {
		all = ListByPatient(all, patientID)
	}
	return SearchRecords(all, query), nil
}

func (s *Service) CountRecords(ctx context.Context) (int, error) {
	return s.records.Count(ctx)
}
