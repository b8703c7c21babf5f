package clinical

import (
	"context"
)

type MedicalRecordRepository interface {
	Create(ctx context.Context, r *MedicalRecord) error
	Insert(ctx context.Context, r *MedicalRecord) error
	GetByID(ctx context.Context, id string) (*MedicalRecord, error)
	Update(ctx context.Context, id string, fn func(*MedicalRecord) error) (*MedicalRecord, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]MedicalRecord, error)
	Count(ctx context.Context) (int, error)
}
