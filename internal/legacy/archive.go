package legacy

import (
	"net/http"
	"time"

	"dadam/internal/api"
	"dadam/internal/handlers"
	"dadam/internal/middleware"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type ArchiveHandler struct{}

func NewArchiveHandler() *ArchiveHandler {
	return &ArchiveHandler{}
}

// Show 지난 질문과 그날의 답변, 답변마다 달린 댓글까지.
// ?date=yyyy-mm-dd, 없으면 어제.
func (h *ArchiveHandler) Show(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		date = time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		handlers.RenderError(c, http.StatusBadRequest, "날짜 형식이 올바르지 않아요")
		return
	}

	data := gin.H{
		"Title":    "지난 질문",
		"Date":     date,
		"Calendar": handlers.ArchiveCalendar(c, date),
	}

	var question Question
	if err := DB.Where("asked_on = ?", date).First(&question).Error; err != nil {
		data["NoQuestion"] = true
		handlers.Render(c, http.StatusOK, "archive/show.html", data)
		return
	}

	me, _ := middleware.CurrentUser(c)
	var meUser api.User
	if me != nil {
		meUser = *me
	}

	var rows []Answer
	DB.Preload("User").Where("question_id = ?", question.ID).Order("created_at ASC").Find(&rows)

	answers := make([]api.Answer, 0, len(rows))
	comments := make(map[int64][]api.Comment, len(rows))
	for _, row := range rows {
		var cms []Comment
		DB.Preload("User").Where("answer_id = ?", row.ID).Order("created_at ASC").Find(&cms)
		for _, cm := range cms {
			comments[row.ID] = append(comments[row.ID], commentToAPI(cm))
		}
		answers = append(answers, answerToAPI(row, len(cms)))
	}

	threads := views.BuildArchive(answers, comments, meUser)
	data["Question"] = api.Question{ID: question.ID, Text: question.Text}
	data["Threads"] = threads
	if len(threads) == 0 {
		data["EmptyMessage"] = views.EmptyListMessage
	}
	handlers.Render(c, http.StatusOK, "archive/show.html", data)
}
