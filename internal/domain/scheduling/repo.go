package scheduling

import (
	"context"
)

type AppointmentRepository interface {
	Create(ctx context.Context, a *Appointment) error
	Insert(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id string) (*Appointment, error)
	Update(ctx context.Context, id string, fn func(*Appointment) error) (*Appointment, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Appointment, error)
	Count(ctx context.Context) (int, error)
}
