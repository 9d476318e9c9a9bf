package doctor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) Create(ctx context.Context, d *Doctor) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Specialization) == "" {
		return fmt.Errorf("specialization is required")
	}
	if d.WeeklySchedule == nil {
		d.WeeklySchedule = WeeklySchedule{}
	}
	if err := d.WeeklySchedule.Validate(); err != nil {
		return err
	}
	return s.doctors.Create(ctx, d)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return s.doctors.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, d *Doctor) error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(d.Specialization) == "" {
		return fmt.Errorf("specialization is required")
	}
	return s.doctors.Update(ctx, d)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.doctors.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context, specialization string, limit, offset int) ([]*Doctor, int, error) {
	return s.doctors.List(ctx, specialization, limit, offset)
}

// SetSchedule replaces a doctor's weekly template after validating it.
func (s *Service) SetSchedule(ctx context.Context, id uuid.UUID, ws WeeklySchedule) error {
	if ws == nil {
		ws = WeeklySchedule{}
	}
	if err := ws.Validate(); err != nil {
		return err
	}
	return s.doctors.UpdateSchedule(ctx, id, ws)
}

// AvailableDates projects the doctor's weekly template onto the booking
// horizon starting at from.
func (s *Service) AvailableDates(ctx context.Context, id uuid.UUID, horizonDays int, from time.Time) ([]string, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.WeeklySchedule.BookableDates(horizonDays, from), nil
}

// SlotsOn returns the doctor's nominal slot times for the given date.
func (s *Service) SlotsOn(ctx context.Context, id uuid.UUID, date time.Time) ([]string, error) {
	d, err := s.doctors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return d.WeeklySchedule.SlotsOn(date), nil
}
