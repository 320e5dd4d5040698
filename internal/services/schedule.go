package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dadam/internal/api"
)

var (
	ErrEmptyScheduleTitle = errors.New("약속 이름을 입력해주세요")
	ErrBadScheduleDate    = errors.New("날짜 형식이 올바르지 않아요")
)

// ScheduleService 가족 캘린더 일정
type ScheduleService struct {
	client *api.Client
}

var scheduleService *ScheduleService

func GetScheduleService() *ScheduleService {
	if scheduleService == nil {
		scheduleService = NewScheduleService(backendClient())
	}
	return scheduleService
}

func NewScheduleService(client *api.Client) *ScheduleService {
	return &ScheduleService{client: client}
}

// List 전체 일정, date 가 있으면 그 날짜만 (yyyy-mm-dd)
func (s *ScheduleService) List(ctx context.Context, date string) ([]api.Schedule, error) {
	path := "/schedules"
	if date != "" {
		path += "?date=" + date
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, path, &raw); err != nil {
		return nil, classifyError(err)
	}
	return api.DecodeSchedules(raw), nil
}

// Upcoming 다가오는 일정 (홈 화면 요약용)
func (s *ScheduleService) Upcoming(ctx context.Context) ([]api.Schedule, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, "/schedules/upcoming", &raw); err != nil {
		return nil, classifyError(err)
	}
	return api.DecodeSchedules(raw), nil
}

// Create 일정 등록
func (s *ScheduleService) Create(ctx context.Context, sched api.Schedule) (api.Schedule, error) {
	sched.Title = strings.TrimSpace(sched.Title)
	if sched.Title == "" {
		return api.Schedule{}, ErrEmptyScheduleTitle
	}
	if _, err := time.Parse("2006-01-02", sched.Date); err != nil {
		return api.Schedule{}, ErrBadScheduleDate
	}

	body := map[string]any{
		"title":  sched.Title,
		"date":   sched.Date,
		"time":   sched.Time,
		"place":  sched.Place,
		"memo":   sched.Memo,
		"type":   sched.Type,
		"remind": sched.Remind,
	}

	var raw json.RawMessage
	if err := s.client.Post(ctx, "/schedules", body, &raw); err != nil {
		return api.Schedule{}, classifyError(err)
	}

	created := api.DecodeSchedule(raw)
	if created.ID == 0 {
		created = sched
	}
	return created, nil
}

// Delete 일정 삭제
func (s *ScheduleService) Delete(ctx context.Context, id int64) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/schedules/%d", id)); err != nil {
		return classifyError(err)
	}
	return nil
}
