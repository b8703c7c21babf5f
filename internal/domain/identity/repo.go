package identity

import (
	"context"
)

type PatientRepository interface {
	Create(ctx context.Context, p *Patient) error
	Insert(ctx context.Context, p *Patient) error
	GetByID(ctx context.Context, id string) (*Patient, error)
	Update(ctx context.Context, id string, fn func(*Patient) error) (*Patient, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Patient, error)
	Count(ctx context.Context) (int, error)
}

type DoctorRepository interface {
	Create(ctx context.Context, d *Doctor) error
	Insert(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id string) (*Doctor, error)
	Update(ctx context.Context, id string, fn func(*Doctor) error) (*Doctor, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Doctor, error)
	Count(ctx context.Context) (int, error)
}
