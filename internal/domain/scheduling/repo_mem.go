package scheduling

import (
	"context"
	"fmt"

	"github.com/clinic/clinic/internal/platform/memstore"
)

// AppointmentRepoMem keeps appointments in booking order.
type AppointmentRepoMem struct {
	items *memstore.Collection[Appointment]
}

func NewAppointmentRepoMem(opts ...memstore.Option) *AppointmentRepoMem {
	return &AppointmentRepoMem{items: memstore.NewCollection("appointment",
		func(a Appointment) string { return a.ID },
		func(a *Appointment, id string) { a.ID = id },
		opts...)}
}

func (r *AppointmentRepoMem) Create(_ context.Context, a *Appointment) error {
	created, err := r.items.Add(*a)
	if err != nil {
		return fmt.Errorf("create appointment: %w", err)
	}
	*a = created
	return nil
}

func (r *AppointmentRepoMem) Insert(_ context.Context, a *Appointment) error {
	return r.items.Insert(*a)
}

func (r *AppointmentRepoMem) GetByID(_ context.Context, id string) (*Appointment, error) {
	a, ok := r.items.Get(id)
	if !ok {
		return nil, fmt.Errorf("appointment %q: %w", id, memstore.ErrNotFound)
	}
	return &a, nil
}

func (r *AppointmentRepoMem) Update(_ context.Context, id string, fn func(*Appointment) error) (*Appointment, error) {
	a, err := r.items.Update(id, fn)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AppointmentRepoMem) Delete(_ context.Context, id string) error {
	return r.items.Remove(id)
}

func (r *AppointmentRepoMem) List(_ context.Context) ([]Appointment, error) {
	return r.items.List(), nil
}

func (r *AppointmentRepoMem) Count(_ context.Context) (int, error) {
	return r.items.Len(), nil
}
