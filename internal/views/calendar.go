package views

import (
	"fmt"
	"time"

	"dadam/internal/api"
)

// CalendarDay 달력 한 칸
type CalendarDay struct {
	Day       int    // 0 이면 빈 칸
	Date      string // yyyy-mm-dd
	IsToday   bool
	Schedules []api.Schedule
}

// CalendarView 월 달력
type CalendarView struct {
	Year      int
	Month     int
	Title     string // "2026년 8월"
	Weeks     [][]CalendarDay
	PrevMonth string // yyyy-mm
	NextMonth string
}

// BuildCalendar 일정이 찍힌 월 달력을 만든다. 주는 일요일부터 시작.
func BuildCalendar(year int, month time.Month, schedules []api.Schedule, today time.Time) CalendarView {
	byDate := make(map[string][]api.Schedule)
	for _, s := range schedules {
		byDate[s.Date] = append(byDate[s.Date], s)
	}

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	todayStr := today.Format("2006-01-02")

	view := CalendarView{
		Year:      year,
		Month:     int(month),
		Title:     fmt.Sprintf("%d년 %d월", year, int(month)),
		PrevMonth: first.AddDate(0, -1, 0).Format("2006-01"),
		NextMonth: first.AddDate(0, 1, 0).Format("2006-01"),
	}

	week := make([]CalendarDay, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, CalendarDay{})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		week = append(week, CalendarDay{
			Day:       day,
			Date:      date,
			IsToday:   date == todayStr,
			Schedules: byDate[date],
		})
		if len(week) == 7 {
			view.Weeks = append(view.Weeks, week)
			week = make([]CalendarDay, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, CalendarDay{})
		}
		view.Weeks = append(view.Weeks, week)
	}
	return view
}
