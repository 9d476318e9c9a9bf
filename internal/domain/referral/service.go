package referral

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carepoint/frontdesk/internal/domain/appointment"
)

// AppointmentReader resolves the appointment a referral points at.
// Satisfied by the appointment repository.
type AppointmentReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
}

type Service struct {
	referrals Repository
	appts     AppointmentReader
}

func NewService(referrals Repository, appts AppointmentReader) *Service {
	return &Service{referrals: referrals, appts: appts}
}

// CreateRequest is a doctor's surgery suggestion for a completed visit.
type CreateRequest struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	Message       string    `json:"message"`
}

// Create files a referral against a completed appointment, snapshotting
// the patient details from the visit record.
func (s *Service) Create(ctx context.Context, req *CreateRequest) (*SurgeryReferral, error) {
	if req.AppointmentID == uuid.Nil {
		return nil, fmt.Errorf("appointment_id is required")
	}
	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" {
		return nil, fmt.Errorf("message is required")
	}

	a, err := s.appts.GetByID(ctx, req.AppointmentID)
	if err != nil {
		return nil, err
	}
	if a.Status != appointment.StatusCompleted {
		return nil, fmt.Errorf("appointment must be completed before referral")
	}

	sr := &SurgeryReferral{
		AppointmentID: a.ID,
		PatientName:   a.PatientName,
		PatientPhone:  a.PatientMobile,
		PatientAge:    a.PatientAge,
		Gender:        a.Gender,
		DoctorName:    a.Doctor.Name,
		Message:       req.Message,
		SubmittedAt:   time.Now().UTC(),
	}
	if err := s.referrals.Create(ctx, sr); err != nil {
		return nil, err
	}
	return sr, nil
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*SurgeryReferral, int, error) {
	return s.referrals.List(ctx, limit, offset)
}

func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.referrals.MarkRead(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.referrals.Delete(ctx, id)
}

func (s *Service) UnreadCount(ctx context.Context) (int, error) {
	return s.referrals.UnreadCount(ctx)
}
