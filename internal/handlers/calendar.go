package handlers

import (
	"net/http"
	"time"

	"dadam/internal/api"
	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"
	"dadam/internal/utils"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	schedules *services.ScheduleService
}

func NewCalendarHandler() *CalendarHandler {
	return &CalendarHandler{
		schedules: services.GetScheduleService(),
	}
}

// Show 월 달력. ?month=yyyy-mm, 없으면 이번 달.
func (h *CalendarHandler) Show(c *gin.Context) {
	ctx := middleware.RequestContext(c)

	now := time.Now()
	year, month := now.Year(), now.Month()
	if m := c.Query("month"); m != "" {
		if parsed, err := time.Parse("2006-01", m); err == nil {
			year, month = parsed.Year(), parsed.Month()
		}
	}

	schedules, err := h.schedules.List(ctx, "")
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, "일정을 불러오지 못했어요")
		return
	}

	Render(c, http.StatusOK, "calendar/show.html", gin.H{
		"Title":    "가족 캘린더",
		"Calendar": views.BuildCalendar(year, month, schedules, now),
	})
}

// Day 하루 일정 목록
func (h *CalendarHandler) Day(c *gin.Context) {
	ctx := middleware.RequestContext(c)

	date := c.Query("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		RenderError(c, http.StatusBadRequest, "날짜 형식이 올바르지 않아요")
		return
	}

	schedules, err := h.schedules.List(ctx, date)
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, "일정을 불러오지 못했어요")
		return
	}

	Render(c, http.StatusOK, "calendar/day.html", gin.H{
		"Title":     "하루 일정",
		"Date":      date,
		"Schedules": schedules,
	})
}

// Create 일정 등록
func (h *CalendarHandler) Create(c *gin.Context) {
	ctx := middleware.RequestContext(c)

	sched := api.Schedule{
		Title:  c.PostForm("title"),
		Date:   c.PostForm("date"),
		Time:   c.PostForm("time"),
		Place:  c.PostForm("place"),
		Memo:   c.PostForm("memo"),
		Type:   c.PostForm("type"),
		Remind: c.PostForm("remind") == "on",
	}

	created, err := h.schedules.Create(ctx, sched)
	if err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}

	middleware.State(c).Notices.Add(store.NoticeTypeSchedule, "새 약속이 잡혔어요: "+created.Title)
	c.Redirect(http.StatusFound, "/calendar?month="+created.Date[:7])
}

// Delete 일정 삭제
func (h *CalendarHandler) Delete(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	id := utils.StringToInt64(c.Param("id"))

	if err := h.schedules.Delete(ctx, id); err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/calendar")
}
