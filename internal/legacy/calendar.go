package legacy

import (
	"net/http"
	"strings"
	"time"

	"dadam/internal/api"
	"dadam/internal/handlers"
	"dadam/internal/middleware"
	"dadam/internal/utils"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct{}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{}
}

func scheduleToAPI(s Schedule) api.Schedule {
	return api.Schedule{
		ID:     s.ID,
		Title:  s.Title,
		Date:   s.Date,
		Time:   s.Time,
		Place:  s.Place,
		Memo:   s.Memo,
		Type:   s.Type,
		Remind: s.Remind,
	}
}

// familySchedules 우리 가족 구성원들의 일정
func familySchedules(me *api.User, date string) []api.Schedule {
	var ids []int64
	DB.Model(&User{}).Where("family_code = ?", me.FamilyCode).Pluck("id", &ids)

	q := DB.Where("user_id IN ?", ids)
	if date != "" {
		q = q.Where("date = ?", date)
	}

	var rows []Schedule
	q.Order("date ASC, time ASC").Find(&rows)

	schedules := make([]api.Schedule, 0, len(rows))
	for _, row := range rows {
		schedules = append(schedules, scheduleToAPI(row))
	}
	return schedules
}

// Show 월 달력
func (h *CalendarHandler) Show(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)

	now := time.Now()
	year, month := now.Year(), now.Month()
	if m := c.Query("month"); m != "" {
		if parsed, err := time.Parse("2006-01", m); err == nil {
			year, month = parsed.Year(), parsed.Month()
		}
	}

	handlers.Render(c, http.StatusOK, "calendar/show.html", gin.H{
		"Title":    "가족 캘린더",
		"Calendar": views.BuildCalendar(year, month, familySchedules(me, ""), now),
	})
}

// Day 하루 일정
func (h *CalendarHandler) Day(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		handlers.RenderError(c, http.StatusBadRequest, "날짜 형식이 올바르지 않아요")
		return
	}

	handlers.Render(c, http.StatusOK, "calendar/day.html", gin.H{
		"Title":     "하루 일정",
		"Date":      date,
		"Schedules": familySchedules(me, date),
	})
}

// Create 일정 등록
func (h *CalendarHandler) Create(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)

	title := strings.TrimSpace(c.PostForm("title"))
	date := c.PostForm("date")
	if title == "" {
		handlers.RenderError(c, http.StatusBadRequest, "약속 이름을 입력해주세요")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		handlers.RenderError(c, http.StatusBadRequest, "날짜 형식이 올바르지 않아요")
		return
	}

	DB.Create(&Schedule{
		UserID: me.ID,
		Title:  title,
		Date:   date,
		Time:   c.PostForm("time"),
		Place:  c.PostForm("place"),
		Memo:   c.PostForm("memo"),
		Type:   c.PostForm("type"),
		Remind: c.PostForm("remind") == "on",
	})

	c.Redirect(http.StatusFound, "/calendar?month="+date[:7])
}

// Delete 일정 삭제 (등록한 사람만)
func (h *CalendarHandler) Delete(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)
	id := utils.StringToInt64(c.Param("id"))

	var sched Schedule
	if err := DB.First(&sched, id).Error; err != nil {
		handlers.RenderError(c, http.StatusNotFound, "일정을 찾을 수 없어요")
		return
	}
	if sched.UserID != me.ID {
		handlers.RenderError(c, http.StatusForbidden, "내가 만든 일정만 지울 수 있어요")
		return
	}

	DB.Delete(&sched)
	c.Redirect(http.StatusFound, "/calendar")
}
