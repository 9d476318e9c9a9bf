package appointment

import (
	"time"
)

// QueueInfo describes the state of one slot queue: the appointments
// already holding positions and where the next booking would land.
type QueueInfo struct {
	// Position is the 0-indexed place the next booking would take.
	Position int `json:"position"`
	// WaitingMinutes is Position stretched over the slot interval.
	WaitingMinutes int `json:"waiting_minutes"`
	// ProjectedStart is the nominal slot start shifted by the wait.
	// Overflow past midnight lands on the next calendar date.
	ProjectedStart time.Time `json:"projected_start"`
	// Queue holds the non-cancelled appointments in service order.
	Queue []*Appointment `json:"queue"`
	// Total is len(Queue).
	Total int `json:"total"`
}

// buildQueueInfo computes queue placement from one consistent snapshot of
// the slot's non-cancelled appointments, already ordered by insertion.
func buildQueueInfo(entries []*Appointment, slotStart time.Time) *QueueInfo {
	position := len(entries)
	waiting := time.Duration(position) * SlotInterval
	return &QueueInfo{
		Position:       position,
		WaitingMinutes: int(waiting.Minutes()),
		ProjectedStart: slotStart.Add(waiting),
		Queue:          entries,
		Total:          len(entries),
	}
}

// slotStart combines a calendar date with a nominal "HH:MM" time into the
// slot's full start timestamp.
func slotStart(date time.Time, hhmm string) (time.Time, error) {
	t, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
