package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Appointment, int, error)
	ListByDoctorDate(ctx context.Context, doctorID uuid.UUID, date time.Time, limit, offset int) ([]*Appointment, int, error)
	// ListSlotQueue returns the slot's non-cancelled appointments in
	// insertion order, from one consistent snapshot.
	ListSlotQueue(ctx context.Context, doctorID uuid.UUID, date time.Time, slotTime string) ([]*Appointment, error)
	// UpdateStatus is a compare-and-set on (id, expected current status).
	// It reports whether a row was updated.
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) (bool, error)
	Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Appointment, int, error)
}
