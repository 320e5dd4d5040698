package handlers

import (
	"errors"
	"net/http"
	"time"

	"dadam/internal/api"
	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	questions *services.QuestionService
	answers   *services.AnswerService
	family    *services.FamilyService
	schedules *services.ScheduleService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		questions: services.GetQuestionService(),
		answers:   services.GetAnswerService(),
		family:    services.GetFamilyService(),
		schedules: services.GetScheduleService(),
	}
}

// Index 오늘의 질문과 답변 목록
func (h *HomeHandler) Index(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	me, _ := middleware.CurrentUser(c)
	state := middleware.State(c)

	question, err := h.questions.Today(ctx)
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		if errors.Is(err, services.ErrNoQuestion) {
			Render(c, http.StatusOK, "home/index.html", gin.H{
				"Title":      "오늘의 질문",
				"NoQuestion": true,
			})
			return
		}
		RenderError(c, http.StatusBadGateway, "오늘의 질문을 불러오지 못했어요")
		return
	}

	answers, err := h.answers.Refresh(ctx, state, question.ID)
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		// 목록을 못 받아도 캐시라도 보여준다
		answers = h.answers.Cached(state)
	}

	familyTotal := 0
	if me != nil {
		if members, err := h.family.Members(ctx, *me); err == nil {
			familyTotal = len(members)
		}
	}

	var upcoming []api.Schedule
	if list, err := h.schedules.Upcoming(ctx); err == nil && len(list) > 0 {
		// 내일 약속은 알림으로도 한 번 알려준다
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		for _, s := range list {
			if s.Date == tomorrow {
				state.Notices.AddOnce(store.NoticeTypeSchedule, "내일 약속이 있어요: "+s.Title)
			}
		}
		upcoming = list
		if len(upcoming) > 3 {
			upcoming = upcoming[:3]
		}
	}

	var meUser api.User
	if me != nil {
		meUser = *me
	}
	list := views.BuildAnswerList(answers, meUser, state.Answers.Liked, familyTotal)

	Render(c, http.StatusOK, "home/index.html", gin.H{
		"Title":     "오늘의 질문",
		"Question":  question,
		"List":      list,
		"Upcoming":  upcoming,
		"AnswerMax": services.AnswerMaxLen,
	})
}

// CreateAnswer 오늘의 질문에 답변 등록
func (h *HomeHandler) CreateAnswer(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)

	question, err := h.questions.Today(ctx)
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, "오늘의 질문을 불러오지 못했어요")
		return
	}

	content := c.PostForm("content")
	if err := h.answers.Create(ctx, state, question.ID, content); err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}

	state.Notices.Add(store.NoticeTypeAnswer, "오늘의 질문에 답변을 남겼어요")
	c.Redirect(http.StatusFound, "/")
}
