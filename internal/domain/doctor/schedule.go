package doctor

import (
	"fmt"
	"sort"
	"time"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// TimeLayout is the wire format for nominal slot times.
const TimeLayout = "15:04"

// ValidSlotTime reports whether s is a well-formed 24h "HH:MM" time.
func ValidSlotTime(s string) bool {
	_, err := time.Parse(TimeLayout, s)
	return err == nil && len(s) == 5
}

// AddSlot inserts a slot time into the given weekday, keeping the day's
// times sorted. Duplicate times and malformed input are rejected.
func (ws WeeklySchedule) AddSlot(day, hhmm string) error {
	if !weekdayNames[day] {
		return fmt.Errorf("invalid weekday: %s", day)
	}
	if !ValidSlotTime(hhmm) {
		return fmt.Errorf("invalid slot time: %s", hhmm)
	}
	for _, t := range ws[day] {
		if t == hhmm {
			return fmt.Errorf("slot %s already exists on %s", hhmm, day)
		}
	}
	ws[day] = append(ws[day], hhmm)
	sort.Strings(ws[day])
	return nil
}

// RemoveSlot deletes a slot time from the given weekday.
func (ws WeeklySchedule) RemoveSlot(day, hhmm string) error {
	if !weekdayNames[day] {
		return fmt.Errorf("invalid weekday: %s", day)
	}
	times := ws[day]
	for i, t := range times {
		if t == hhmm {
			ws[day] = append(times[:i], times[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("slot %s not found on %s", hhmm, day)
}

// HasSlot reports whether the weekday of date carries the given nominal time.
func (ws WeeklySchedule) HasSlot(date time.Time, hhmm string) bool {
	for _, t := range ws[date.Weekday().String()] {
		if t == hhmm {
			return true
		}
	}
	return false
}

// Validate checks weekday names, time formats, uniqueness and ordering.
func (ws WeeklySchedule) Validate() error {
	for day, times := range ws {
		if !weekdayNames[day] {
			return fmt.Errorf("invalid weekday: %s", day)
		}
		seen := make(map[string]bool, len(times))
		for i, t := range times {
			if !ValidSlotTime(t) {
				return fmt.Errorf("invalid slot time on %s: %s", day, t)
			}
			if seen[t] {
				return fmt.Errorf("duplicate slot on %s: %s", day, t)
			}
			seen[t] = true
			if i > 0 && times[i-1] > t {
				return fmt.Errorf("slots on %s are not in order", day)
			}
		}
	}
	return nil
}

// BookableDates walks the horizon starting at from and returns every date
// whose weekday has at least one configured slot, in chronological order
// as "YYYY-MM-DD" strings. An empty template yields an empty result.
func (ws WeeklySchedule) BookableDates(horizonDays int, from time.Time) []string {
	dates := []string{}
	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < horizonDays; i++ {
		if len(ws[day.Weekday().String()]) > 0 {
			dates = append(dates, day.Format(DateLayout))
		}
		day = day.AddDate(0, 0, 1)
	}
	return dates
}

// SlotsOn returns the configured times for the weekday of date, verbatim.
// Slots are unbounded queues, so no saturation filtering happens here.
func (ws WeeklySchedule) SlotsOn(date time.Time) []string {
	times := ws[date.Weekday().String()]
	out := make([]string, len(times))
	copy(out, times)
	return out
}
