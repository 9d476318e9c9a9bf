package referral

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/carepoint/frontdesk/internal/domain/appointment"
)

type mockRepo struct {
	referrals []*SurgeryReferral
}

func (m *mockRepo) Create(ctx context.Context, sr *SurgeryReferral) error {
	sr.ID = uuid.New()
	m.referrals = append(m.referrals, sr)
	return nil
}

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*SurgeryReferral, error) {
	for _, sr := range m.referrals {
		if sr.ID == id {
			return sr, nil
		}
	}
	return nil, ErrNotFound
}

func (m *mockRepo) List(ctx context.Context, limit, offset int) ([]*SurgeryReferral, int, error) {
	return m.referrals, len(m.referrals), nil
}

func (m *mockRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	for _, sr := range m.referrals {
		if sr.ID == id {
			sr.Read = true
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockRepo) Delete(ctx context.Context, id uuid.UUID) error {
	for i, sr := range m.referrals {
		if sr.ID == id {
			m.referrals = append(m.referrals[:i], m.referrals[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *mockRepo) UnreadCount(ctx context.Context) (int, error) {
	count := 0
	for _, sr := range m.referrals {
		if !sr.Read {
			count++
		}
	}
	return count, nil
}

type mockAppts struct {
	appts map[uuid.UUID]*appointment.Appointment
}

func (m *mockAppts) GetByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	a, ok := m.appts[id]
	if !ok {
		return nil, appointment.ErrNotFound
	}
	return a, nil
}

func setup(t *testing.T, status string) (*Service, *mockRepo, *appointment.Appointment) {
	t.Helper()
	a := &appointment.Appointment{
		ID:            uuid.New(),
		PatientName:   "Asha Rao",
		PatientAge:    34,
		PatientMobile: "555-0101",
		Gender:        "female",
		Doctor:        appointment.DoctorSnapshot{ID: uuid.New(), Name: "Dr. Rao"},
		Status:        status,
		CreatedAt:     time.Now(),
	}
	repo := &mockRepo{}
	svc := NewService(repo, &mockAppts{appts: map[uuid.UUID]*appointment.Appointment{a.ID: a}})
	return svc, repo, a
}

func TestCreate_SnapshotsFromAppointment(t *testing.T) {
	svc, _, a := setup(t, appointment.StatusCompleted)

	sr, err := svc.Create(context.Background(), &CreateRequest{
		AppointmentID: a.ID,
		Message:       "recommend bypass surgery consult",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sr.PatientName != a.PatientName || sr.DoctorName != a.Doctor.Name {
		t.Errorf("snapshot mismatch: %+v", sr)
	}
	if sr.Read {
		t.Error("new referral should start unread")
	}
}

func TestCreate_RejectsIncompleteAppointment(t *testing.T) {
	svc, repo, a := setup(t, appointment.StatusConfirmed)

	_, err := svc.Create(context.Background(), &CreateRequest{
		AppointmentID: a.ID,
		Message:       "too early",
	})
	if err == nil {
		t.Fatal("expected error for non-completed appointment")
	}
	if len(repo.referrals) != 0 {
		t.Error("store must not be mutated on failure")
	}
}

func TestCreate_Validation(t *testing.T) {
	svc, _, a := setup(t, appointment.StatusCompleted)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &CreateRequest{Message: "m"}); err == nil {
		t.Error("expected error for missing appointment id")
	}
	if _, err := svc.Create(ctx, &CreateRequest{AppointmentID: a.ID, Message: "  "}); err == nil {
		t.Error("expected error for blank message")
	}
	if _, err := svc.Create(ctx, &CreateRequest{AppointmentID: uuid.New(), Message: "m"}); err != appointment.ErrNotFound {
		t.Errorf("expected appointment.ErrNotFound, got %v", err)
	}
}

func TestUnreadCountAndMarkRead(t *testing.T) {
	svc, _, a := setup(t, appointment.StatusCompleted)
	ctx := context.Background()

	sr1, err := svc.Create(ctx, &CreateRequest{AppointmentID: a.ID, Message: "first"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, &CreateRequest{AppointmentID: a.ID, Message: "second"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	count, err := svc.UnreadCount(ctx)
	if err != nil || count != 2 {
		t.Fatalf("expected 2 unread, got %d (%v)", count, err)
	}

	if err := svc.MarkRead(ctx, sr1.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	count, _ = svc.UnreadCount(ctx)
	if count != 1 {
		t.Errorf("expected 1 unread after mark read, got %d", count)
	}

	if err := svc.MarkRead(ctx, uuid.New()); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	svc, repo, a := setup(t, appointment.StatusCompleted)
	ctx := context.Background()

	sr, err := svc.Create(ctx, &CreateRequest{AppointmentID: a.ID, Message: "m"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(ctx, sr.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.referrals) != 0 {
		t.Error("referral should be removed")
	}
	if err := svc.Delete(ctx, sr.ID); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
