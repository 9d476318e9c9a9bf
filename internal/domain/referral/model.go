package referral

import (
	"time"

	"github.com/google/uuid"
)

// SurgeryReferral is a doctor's surgery suggestion for a completed
// appointment, surfaced to the front desk.
type SurgeryReferral struct {
	ID            uuid.UUID `db:"id" json:"id"`
	AppointmentID uuid.UUID `db:"appointment_id" json:"appointment_id"`
	PatientName   string    `db:"patient_name" json:"patient_name"`
	PatientPhone  string    `db:"patient_phone" json:"patient_phone"`
	PatientAge    int       `db:"patient_age" json:"patient_age"`
	Gender        string    `db:"gender" json:"gender"`
	DoctorName    string    `db:"doctor_name" json:"doctor_name"`
	Message       string    `db:"message" json:"message"`
	SubmittedAt   time.Time `db:"submitted_at" json:"submitted_at"`
	Read          bool      `db:"read" json:"read"`
}
