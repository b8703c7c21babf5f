package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/clinic/clinic/internal/platform/memstore"
)

// ErrReferenceNotFound is returned when a write names a patient or doctor
// that does not exist. Callers must reject the write.
var ErrReferenceNotFound = errors.New("referenced record not found")

// ResolvePatientName returns the current name of the patient with the given
// id. The name is a snapshot: later renames are not propagated.
func (s *Service) ResolvePatientName(ctx context.Context, id string) (string, error) {
	p, err := s.patients.GetByID(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return "", fmt.Errorf("patient %q: %w", id, ErrReferenceNotFound)
	}
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// ResolveDoctorName returns the current name of the doctor with the given id.
func (s *Service) ResolveDoctorName(ctx context.Context, id string) (string, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if errors.Is(err, memstore.ErrNotFound) {
		return "", fmt.Errorf("doctor %q: %w", id, ErrReferenceNotFound)
	}
	if err != nil {
		return "", err
	}
	return d.Name, nil
}
