package handlers

import (
	"errors"
	"net/http"
	"time"

	"dadam/internal/api"
	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct {
	questions *services.QuestionService
	answers   *services.AnswerService
}

func NewArchiveHandler() *ArchiveHandler {
	return &ArchiveHandler{
		questions: services.GetQuestionService(),
		answers:   services.GetAnswerService(),
	}
}

// ArchiveCalendar 지난 질문 화면 위에 띄우는 달 넘김용 달력.
// ?month=yyyy-mm 가 있으면 그 달, 없으면 보고 있는 날짜의 달.
func ArchiveCalendar(c *gin.Context, date string) views.CalendarView {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if parsed, err := time.Parse("2006-01-02", date); err == nil {
		year, month = parsed.Year(), parsed.Month()
	}
	if m := c.Query("month"); m != "" {
		if parsed, err := time.Parse("2006-01", m); err == nil {
			year, month = parsed.Year(), parsed.Month()
		}
	}
	return views.BuildCalendar(year, month, nil, now)
}

// Show 지난 질문과 그날의 답변, 답변마다 달린 댓글까지.
// ?date=yyyy-mm-dd, 없으면 어제.
func (h *ArchiveHandler) Show(c *gin.Context) {
	ctx := middleware.RequestContext(c)

	date := c.Query("date")
	if date == "" {
		date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		RenderError(c, http.StatusBadRequest, "날짜 형식이 올바르지 않아요")
		return
	}

	question, answers, err := h.questions.ByDate(ctx, date)
	if handleAPIError(c, err) {
		return
	}

	data := gin.H{
		"Title":    "지난 질문",
		"Date":     date,
		"Calendar": ArchiveCalendar(c, date),
	}
	if err != nil {
		if !errors.Is(err, services.ErrNoQuestion) {
			RenderError(c, http.StatusBadGateway, "지난 질문을 불러오지 못했어요")
			return
		}
		data["NoQuestion"] = true
		Render(c, http.StatusOK, "archive/show.html", data)
		return
	}

	// 답변마다 댓글을 따로 받아온다. 한둘 실패해도 나머지는 보여준다.
	comments := make(map[int64][]api.Comment, len(answers))
	for _, a := range answers {
		if list, err := h.answers.Comments(ctx, a.ID); err == nil {
			comments[a.ID] = list
		}
	}

	me, _ := middleware.CurrentUser(c)
	var meUser api.User
	if me != nil {
		meUser = *me
	}

	threads := views.BuildArchive(answers, comments, meUser)
	data["Question"] = question
	data["Threads"] = threads
	if len(threads) == 0 {
		data["EmptyMessage"] = views.EmptyListMessage
	}
	Render(c, http.StatusOK, "archive/show.html", data)
}
