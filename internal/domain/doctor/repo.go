package doctor

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	GetByID(ctx context.Context, id uuid.UUID) (*Doctor, error)
	Update(ctx context.Context, d *Doctor) error
	UpdateSchedule(ctx context.Context, id uuid.UUID, ws WeeklySchedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, specialization string, limit, offset int) ([]*Doctor, int, error)
}
