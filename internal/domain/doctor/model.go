package doctor

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySchedule maps a weekday name ("Monday".."Sunday") to the ordered
// list of nominal slot times for that day in 24h "HH:MM" form. Times
// within a day are unique and kept sorted.
type WeeklySchedule map[string][]string

// Doctor maps to the doctors table.
type Doctor struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Name           string         `db:"name" json:"name"`
	Phone          string         `db:"phone" json:"phone"`
	Specialization string         `db:"specialization" json:"specialization"`
	WeeklySchedule WeeklySchedule `db:"weekly_schedule" json:"weekly_schedule"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

var weekdayNames = map[string]bool{
	"Monday": true, "Tuesday": true, "Wednesday": true, "Thursday": true,
	"Friday": true, "Saturday": true, "Sunday": true,
}
