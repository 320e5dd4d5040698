package views

import (
	"testing"
	"time"

	"dadam/internal/api"
)

func TestBuildCalendarShape(t *testing.T) {
	// 2026년 8월: 1일이 토요일, 31일까지
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	view := BuildCalendar(2026, time.August, nil, today)

	if view.Title != "2026년 8월" {
		t.Errorf("Expected 2026년 8월, got %q", view.Title)
	}
	if view.PrevMonth != "2026-07" || view.NextMonth != "2026-09" {
		t.Errorf("Month navigation wrong: %s / %s", view.PrevMonth, view.NextMonth)
	}

	first := view.Weeks[0]
	if first[6].Day != 1 {
		t.Errorf("Aug 1 2026 is a Saturday; expected day 1 in slot 6, got %d", first[6].Day)
	}
	for i := 0; i < 6; i++ {
		if first[i].Day != 0 {
			t.Errorf("Slot %d before the 1st should be blank", i)
		}
	}

	var last CalendarDay
	for _, week := range view.Weeks {
		for _, d := range week {
			if d.Day != 0 {
				last = d
			}
		}
	}
	if last.Day != 31 {
		t.Errorf("Expected the month to end on 31, got %d", last.Day)
	}

	for _, week := range view.Weeks {
		if len(week) != 7 {
			t.Fatalf("Every week must have 7 slots, got %d", len(week))
		}
	}
}

func TestBuildCalendarMarksTodayAndSchedules(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	schedules := []api.Schedule{
		{ID: 1, Title: "가족 저녁", Date: "2026-08-29", Type: "dinner"},
		{ID: 2, Title: "여행", Date: "2026-08-30", Type: "trip"},
	}
	view := BuildCalendar(2026, time.August, schedules, today)

	var found bool
	for _, week := range view.Weeks {
		for _, d := range week {
			if d.Date == "2026-08-29" {
				found = true
				if !d.IsToday {
					t.Error("Aug 29 should be marked today")
				}
				if len(d.Schedules) != 1 || d.Schedules[0].Title != "가족 저녁" {
					t.Errorf("Schedule not attached: %+v", d.Schedules)
				}
			}
		}
	}
	if !found {
		t.Fatal("Aug 29 missing from the grid")
	}
}
