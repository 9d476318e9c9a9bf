package appointment

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/carepoint/frontdesk/internal/domain/doctor"
	"github.com/carepoint/frontdesk/internal/platform/auth"
)

// DoctorDirectory resolves doctors at booking time. Satisfied by the
// doctor repository.
type DoctorDirectory interface {
	GetByID(ctx context.Context, id uuid.UUID) (*doctor.Doctor, error)
}

type Service struct {
	appts   Repository
	doctors DoctorDirectory
	logger  zerolog.Logger
}

func NewService(appts Repository, doctors DoctorDirectory, logger zerolog.Logger) *Service {
	return &Service{appts: appts, doctors: doctors, logger: logger}
}

// BookingRequest carries the fields a patient submits to book a slot.
type BookingRequest struct {
	PatientName   string    `json:"patient_name"`
	PatientAge    int       `json:"patient_age"`
	PatientMobile string    `json:"patient_mobile"`
	Gender        string    `json:"gender"`
	DoctorID      uuid.UUID `json:"doctor_id"`
	Department    string    `json:"department"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Type          string    `json:"type"`
	Symptoms      string    `json:"symptoms"`
	Reports       []string  `json:"reports"`
}

// validate returns the first missing or malformed field.
func (req *BookingRequest) validate() error {
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.PatientMobile = strings.TrimSpace(req.PatientMobile)
	req.Gender = strings.TrimSpace(req.Gender)
	req.Symptoms = strings.TrimSpace(req.Symptoms)

	switch {
	case req.PatientName == "":
		return &ValidationError{Field: "patient_name"}
	case req.PatientAge <= 0:
		return &ValidationError{Field: "patient_age"}
	case req.PatientMobile == "":
		return &ValidationError{Field: "patient_mobile"}
	case req.Gender == "":
		return &ValidationError{Field: "gender"}
	case req.DoctorID == uuid.Nil:
		return &ValidationError{Field: "doctor_id"}
	case req.Date == "":
		return &ValidationError{Field: "date"}
	case req.Time == "":
		return &ValidationError{Field: "time"}
	case req.Symptoms == "":
		return &ValidationError{Field: "symptoms"}
	}
	return nil
}

// GetQueueInfo reports where the next booking at the given slot would
// land. It is a pure read over one snapshot of the appointment store.
func (s *Service) GetQueueInfo(ctx context.Context, doctorID uuid.UUID, date time.Time, slotTime string) (*QueueInfo, error) {
	if doctorID == uuid.Nil || date.IsZero() || slotTime == "" {
		return nil, ErrInvalidInput
	}
	start, err := slotStart(date, slotTime)
	if err != nil {
		return nil, ErrInvalidInput
	}

	entries, err := s.appts.ListSlotQueue(ctx, doctorID, dateOnly(date), slotTime)
	if err != nil {
		return nil, err
	}
	return buildQueueInfo(entries, start), nil
}

// Book validates the request, resolves the doctor, computes the queue
// placement, and appends the appointment. The queue preview is advisory:
// concurrent bookings are serialized by store insertion order, not by a
// lock, so both land with sequential positions.
func (s *Service) Book(ctx context.Context, req *BookingRequest) (*Appointment, error) {
	callerID := auth.UserIDFromContext(ctx)
	if callerID == "" {
		return nil, ErrNotAuthenticated
	}

	if err := req.validate(); err != nil {
		return nil, err
	}

	date, err := time.Parse(doctor.DateLayout, req.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date"}
	}
	if !doctor.ValidSlotTime(req.Time) {
		return nil, &ValidationError{Field: "time"}
	}

	d, err := s.doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctor.ErrNotFound) {
			return nil, ErrDoctorNotFound
		}
		return nil, err
	}
	if !d.WeeklySchedule.HasSlot(date, req.Time) {
		return nil, &ValidationError{Field: "time"}
	}

	info, err := s.GetQueueInfo(ctx, d.ID, date, req.Time)
	if err != nil {
		return nil, err
	}

	start, _ := slotStart(date, req.Time)
	apptType := req.Type
	if apptType == "" {
		apptType = TypeInPerson
	}

	a := &Appointment{
		ID:            uuid.New(),
		PatientID:     callerID,
		PatientName:   req.PatientName,
		PatientAge:    req.PatientAge,
		PatientMobile: req.PatientMobile,
		Gender:        req.Gender,
		Doctor: DoctorSnapshot{
			ID:             d.ID,
			Name:           d.Name,
			Specialization: d.Specialization,
			Phone:          d.Phone,
		},
		Department:     req.Department,
		Date:           dateOnly(date),
		SlotTime:       req.Time,
		StartTime:      start,
		EndTime:        start.Add(SlotInterval),
		ProjectedStart: info.ProjectedStart,
		Type:           apptType,
		Symptoms:       req.Symptoms,
		Reports:        req.Reports,
		Status:         StatusConfirmed,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.appts.Create(ctx, a); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", a.ID.String()).
		Str("doctor_id", d.ID.String()).
		Str("patient_id", callerID).
		Str("slot", req.Date+" "+req.Time).
		Int("queue_position", info.Position).
		Msg("appointment booked")

	return a, nil
}

var allowedTransitions = map[string]map[string]bool{
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
}

// UpdateStatus moves an appointment from confirmed to completed or
// cancelled via compare-and-set. Terminal states stay terminal: a lost
// race re-reads the row and surfaces ErrInvalidTransition.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, newStatus string) (*Appointment, error) {
	if !allowedTransitions[StatusConfirmed][newStatus] {
		return nil, ErrInvalidTransition
	}

	updated, err := s.appts.UpdateStatus(ctx, id, StatusConfirmed, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		if _, err := s.appts.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	a, err := s.appts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", id.String()).
		Str("status", newStatus).
		Msg("appointment status updated")

	return a, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Appointment, error) {
	return s.appts.GetByID(ctx, id)
}

func (s *Service) ListByPatient(ctx context.Context, patientID string, limit, offset int) ([]*Appointment, int, error) {
	return s.appts.ListByPatient(ctx, patientID, limit, offset)
}

func (s *Service) ListByDoctorDate(ctx context.Context, doctorID uuid.UUID, date time.Time, limit, offset int) ([]*Appointment, int, error) {
	return s.appts.ListByDoctorDate(ctx, doctorID, dateOnly(date), limit, offset)
}

func (s *Service) Search(ctx context.Context, params map[string]string, limit, offset int) ([]*Appointment, int, error) {
	return s.appts.Search(ctx, params, limit, offset)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
