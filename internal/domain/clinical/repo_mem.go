package clinical

import (
	"context"
	"fmt"

	"github.com/clinic/clinic/internal/platform/memstore"
)

// MedicalRecordRepoMem keeps medical records in the order they were written.
type MedicalRecordRepoMem struct {
	items *memstore.Collection[MedicalRecord]
}

func NewMedicalRecordRepoMem(opts ...memstore.Option) *MedicalRecordRepoMem {
	return &MedicalRecordRepoMem{items: memstore.NewCollection("medical_record",
		func(r MedicalRecord) string { return r.ID },
		func(r *MedicalRecord, id string) { r.ID = id },
		opts...)}
}

func (r *MedicalRecordRepoMem) Create(_ context.Context, rec *MedicalRecord) error {
	created, err := r.items.Add(*rec)
	if err != nil {
		return fmt.Errorf("create medical record: %w", err)
	}
	*rec = created
	return nil
}

func (r *MedicalRecordRepoMem) Insert(_ context.Context, rec *MedicalRecord) error {
	return r.items.Insert(*rec)
}

func (r *MedicalRecordRepoMem) GetByID(_ context.Context, id string) (*MedicalRecord, error) {
	rec, ok := r.items.Get(id)
	if !ok {
		return nil, fmt.Errorf("medical record %q: %w", id, memstore.ErrNotFound)
	}
	return &rec, nil
}

func (r *MedicalRecordRepoMem) Update(_ context.Context, id string, fn func(*MedicalRecord) error) (*MedicalRecord, error) {
	rec, err := r.items.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *MedicalRecordRepoMem) Delete(_ context.Context, id string) error {
	return r.items.Remove(id)
}

func (r *MedicalRecordRepoMem) List(_ context.Context) ([]MedicalRecord, error) {
	return r.items.List(), nil
}

func (r *MedicalRecordRepoMem) Count(_ context.Context) (int, error) {
	return r.items.Len(), nil
}
