package identity

import (
	"context"
	"fmt"

	"github.com/clinic/clinic/internal/platform/memstore"
)

// PatientRepoMem keeps patients in an ordered in-memory collection.
type PatientRepoMem struct {
	items *memstore.Collection[Patient]
}

func NewPatientRepoMem(opts ...memstore.Option) *PatientRepoMem {
	return &PatientRepoMem{items: memstore.NewCollection("patient",
		func(p Patient) string { return p.ID },
		func(p *Patient, id string) { p.ID = id },
		opts...)}
}

func (r *PatientRepoMem) Create(_ context.Context, p *Patient) error {
	created, err := r.items.Add(*p)
	if err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	*p = created
	return nil
}

func (r *PatientRepoMem) Insert(_ context.Context, p *Patient) error {
	return r.items.Insert(*p)
}

func (r *PatientRepoMem) GetByID(_ context.Context, id string) (*Patient, error) {
	p, ok := r.items.Get(id)
	if !ok {
		return nil, fmt.Errorf("patient %q: %w", id, memstore.ErrNotFound)
	}
	return &p, nil
}

func (r *PatientRepoMem) Update(_ context.Context, id string, fn func(*Patient) error) (*Patient, error) {
	p, err := r.items.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PatientRepoMem) Delete(_ context.Context, id string) error {
	return r.items.Remove(id)
}

func (r *PatientRepoMem) List(_ context.Context) ([]Patient, error) {
	return r.items.List(), nil
}

func (r *PatientRepoMem) Count(_ context.Context) (int, error) {
	return r.items.Len(), nil
}

// DoctorRepoMem keeps doctors in an ordered in-memory collection.
type DoctorRepoMem struct {
	items *memstore.Collection[Doctor]
}

func NewDoctorRepoMem(opts ...memstore.Option) *DoctorRepoMem {
	return &DoctorRepoMem{items: memstore.NewCollection("doctor",
		func(d Doctor) string { return d.ID },
		func(d *Doctor, id string) { d.ID = id },
		opts...)}
}

func (r *DoctorRepoMem) Create(_ context.Context, d *Doctor) error {
	created, err := r.items.Add(*d)
	if err != nil {
		return fmt.Errorf("create doctor: %w", err)
	}
	*d = created
	return nil
}

func (r *DoctorRepoMem) Insert(_ context.Context, d *Doctor) error {
	return r.items.Insert(*d)
}

func (r *DoctorRepoMem) GetByID(_ context.Context, id string) (*Doctor, error) {
	d, ok := r.items.Get(id)
	if !ok {
		return nil, fmt.Errorf("doctor %q: %w", id, memstore.ErrNotFound)
	}
	return &d, nil
}

func (r *DoctorRepoMem) Update(_ context.Context, id string, fn func(*Doctor) error) (*Doctor, error) {
	d, err := r.items.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DoctorRepoMem) Delete(_ context.Context, id string) error {
	return r.items.Remove(id)
}

func (r *DoctorRepoMem) List(_ context.Context) ([]Doctor, error) {
	return r.items.List(), nil
}

func (r *DoctorRepoMem) Count(_ context.Context) (int, error) {
	return r.items.Len(), nil
}
