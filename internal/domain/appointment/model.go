package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment statuses. Confirmed is the only non-terminal state.
const (
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Appointment types.
const (
	TypeInPerson = "in-person"
	TypeVirtual  = "virtual"
)

// SlotInterval is the nominal length of one queue position.
const SlotInterval = 10 * time.Minute

// DoctorSnapshot is the doctor's directory entry frozen at booking time,
// so historical appointments stay displayable after directory edits.
type DoctorSnapshot struct {
	ID             uuid.UUID `db:"doctor_id" json:"id"`
	Name           string    `db:"doctor_name" json:"name"`
	Specialization string    `db:"doctor_specialization" json:"specialization"`
	Phone          string    `db:"doctor_phone" json:"phone"`
}

// Appointment maps to the appointments table. Seq is assigned by the store
// and fixes queue order: append order is service order.
type Appointment struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Seq            int64          `db:"seq" json:"seq"`
	PatientID      string         `db:"patient_id" json:"patient_id"`
	PatientName    string         `db:"patient_name" json:"patient_name"`
	PatientAge     int            `db:"patient_age" json:"patient_age"`
	PatientMobile  string         `db:"patient_mobile" json:"patient_mobile"`
	Gender         string         `db:"gender" json:"gender"`
	Doctor         DoctorSnapshot `json:"doctor"`
	Department     string         `db:"department" json:"department"`
	Date           time.Time      `db:"date" json:"date"`
	SlotTime       string         `db:"slot_time" json:"slot_time"`
	StartTime      time.Time      `db:"start_time" json:"start_time"`
	EndTime        time.Time      `db:"end_time" json:"end_time"`
	ProjectedStart time.Time      `db:"projected_start" json:"projected_start"`
	Type           string         `db:"type" json:"type"`
	Symptoms       string         `db:"symptoms" json:"symptoms"`
	Reports        []string       `db:"reports" json:"reports,omitempty"`
	Status         string         `db:"status" json:"status"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}
