package referral

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r *SurgeryReferral) error
	GetByID(ctx context.Context, id uuid.UUID) (*SurgeryReferral, error)
	List(ctx context.Context, limit, offset int) ([]*SurgeryReferral, int, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	UnreadCount(ctx context.Context) (int, error)
}
