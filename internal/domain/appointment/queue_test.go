package appointment

import (
	"testing"
	"time"
)

func TestBuildQueueInfo_Empty(t *testing.T) {
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	info := buildQueueInfo(nil, start)

	if info.Position != 0 || info.WaitingMinutes != 0 || info.Total != 0 {
		t.Errorf("unexpected info for empty queue: %+v", info)
	}
	if !info.ProjectedStart.Equal(start) {
		t.Errorf("empty queue should project the nominal start, got %v", info.ProjectedStart)
	}
}

func TestBuildQueueInfo_ShiftsByInterval(t *testing.T) {
	start := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	entries := []*Appointment{{}, {}}
	info := buildQueueInfo(entries, start)

	if info.Position != 2 {
		t.Errorf("expected position 2, got %d", info.Position)
	}
	if info.WaitingMinutes != 20 {
		t.Errorf("expected 20 waiting minutes, got %d", info.WaitingMinutes)
	}
	if got := info.ProjectedStart.Format("15:04"); got != "09:20" {
		t.Errorf("expected 09:20, got %s", got)
	}
}

func TestSlotStart(t *testing.T) {
	date := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	got, err := slotStart(date, "14:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if _, err := slotStart(date, "noon"); err == nil {
		t.Error("expected error for malformed time")
	}
}
