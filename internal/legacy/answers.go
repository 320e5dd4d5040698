package legacy

import (
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"dadam/internal/api"
	"dadam/internal/handlers"
	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"
	"dadam/internal/utils"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AnswerHandler struct{}

func NewAnswerHandler() *AnswerHandler {
	return &AnswerHandler{}
}

func answerToAPI(a Answer, commentCount int) api.Answer {
	return api.Answer{
		ID:           a.ID,
		UserID:       a.UserID,
		UserName:     a.User.Name,
		Content:      a.Content,
		CreatedAt:    a.CreatedAt,
		LikeCount:    a.LikeCount,
		CommentCount: commentCount,
	}
}

func commentToAPI(cm Comment) api.Comment {
	return api.Comment{
		ID:        cm.ID,
		UserID:    cm.UserID,
		UserName:  cm.User.Name,
		Content:   cm.Content,
		CreatedAt: cm.CreatedAt,
	}
}

// loadAnswers 질문의 답변을 댓글 수까지 채워서 api 형으로 돌려주고,
// 세션 캐시도 같이 갱신한다 (좋아요 토글이 캐시를 본다).
func (h *AnswerHandler) loadAnswers(c *gin.Context, questionID int64) []api.Answer {
	var rows []Answer
	DB.Preload("User").
		Where("question_id = ?", questionID).
		Order("created_at ASC").
		Find(&rows)

	answers := make([]api.Answer, 0, len(rows))
	for _, row := range rows {
		var count int64
		DB.Model(&Comment{}).Where("answer_id = ?", row.ID).Count(&count)
		answers = append(answers, answerToAPI(row, int(count)))
	}

	state := middleware.State(c)
	state.Answers.Replace(state.Answers.BeginRefresh(), answers)
	return answers
}

// Index 오늘의 질문과 답변 목록
func (h *AnswerHandler) Index(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)
	state := middleware.State(c)

	question, err := TodayQuestion()
	if err != nil {
		handlers.RenderError(c, http.StatusInternalServerError, "오늘의 질문을 불러오지 못했어요")
		return
	}

	answers := h.loadAnswers(c, question.ID)

	// 내일 약속은 알림으로도 한 번 알려준다
	if me != nil {
		tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
		for _, s := range familySchedules(me, tomorrow) {
			state.Notices.AddOnce(store.NoticeTypeSchedule, "내일 약속이 있어요: "+s.Title)
		}
	}

	var familyTotal int64
	if me != nil && me.FamilyCode != "" {
		DB.Model(&User{}).Where("family_code = ?", me.FamilyCode).Count(&familyTotal)
	}

	var meUser api.User
	if me != nil {
		meUser = *me
	}
	list := views.BuildAnswerList(answers, meUser, state.Answers.Liked, int(familyTotal))

	handlers.Render(c, http.StatusOK, "home/index.html", gin.H{
		"Title":     "오늘의 질문",
		"Question":  api.Question{ID: question.ID, Text: question.Text},
		"List":      list,
		"AnswerMax": services.AnswerMaxLen,
	})
}

// CreateAnswer 답변 등록. 질문당 한 사람 하나.
func (h *AnswerHandler) CreateAnswer(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)

	question, err := TodayQuestion()
	if err != nil {
		handlers.RenderError(c, http.StatusInternalServerError, "오늘의 질문을 불러오지 못했어요")
		return
	}

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		handlers.RenderError(c, http.StatusBadRequest, "내용을 입력해주세요")
		return
	}
	if utf8.RuneCountInString(content) > services.AnswerMaxLen {
		handlers.RenderError(c, http.StatusBadRequest, "답변은 500자까지 쓸 수 있어요")
		return
	}

	var existing int64
	DB.Model(&Answer{}).Where("question_id = ? AND user_id = ?", question.ID, me.ID).Count(&existing)
	if existing > 0 {
		handlers.RenderError(c, http.StatusConflict, "이미 답변을 작성했습니다")
		return
	}

	answer := Answer{QuestionID: question.ID, UserID: me.ID, Content: content}
	if err := DB.Create(&answer).Error; err != nil {
		handlers.RenderError(c, http.StatusConflict, "이미 답변을 작성했습니다")
		return
	}

	middleware.State(c).Notices.Add(store.NoticeTypeAnswer, "오늘의 질문에 답변을 남겼어요")
	c.Redirect(http.StatusFound, "/")
}

func (h *AnswerHandler) ownAnswer(c *gin.Context) (Answer, bool) {
	me, _ := middleware.CurrentUser(c)
	id := utils.StringToInt64(c.Param("aid"))

	var answer Answer
	if err := DB.Preload("User").First(&answer, id).Error; err != nil {
		handlers.RenderError(c, http.StatusNotFound, "답변을 찾을 수 없어요")
		return Answer{}, false
	}
	if answer.UserID != me.ID {
		handlers.RenderError(c, http.StatusForbidden, "내 답변만 고칠 수 있어요")
		return Answer{}, false
	}
	return answer, true
}

// Detail 답변 상세와 댓글
func (h *AnswerHandler) Detail(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)
	state := middleware.State(c)
	id := utils.StringToInt64(c.Param("aid"))

	var answer Answer
	if err := DB.Preload("User").First(&answer, id).Error; err != nil {
		handlers.RenderError(c, http.StatusNotFound, "답변을 찾을 수 없어요")
		return
	}

	var rows []Comment
	DB.Preload("User").Where("answer_id = ?", id).Order("created_at ASC").Find(&rows)
	comments := make([]api.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, commentToAPI(row))
	}

	var meUser api.User
	if me != nil {
		meUser = *me
	}
	thread := views.BuildThread(answerToAPI(answer, len(comments)), comments, meUser,
		state.Answers.Liked, services.AnswerMaxLen, services.CommentMaxLen)

	handlers.Render(c, http.StatusOK, "answer/detail.html", gin.H{
		"Title":  answer.User.Name + "님의 답변",
		"Thread": thread,
	})
}

// Update 내 답변 수정
func (h *AnswerHandler) Update(c *gin.Context) {
	answer, ok := h.ownAnswer(c)
	if !ok {
		return
	}

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" || utf8.RuneCountInString(content) > services.AnswerMaxLen {
		handlers.RenderError(c, http.StatusBadRequest, "답변은 1자 이상 500자 이하로 써주세요")
		return
	}

	answer.Content = content
	DB.Save(&answer)
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}

// Delete 내 답변 삭제 (댓글도 같이 지워진다)
func (h *AnswerHandler) Delete(c *gin.Context) {
	answer, ok := h.ownAnswer(c)
	if !ok {
		return
	}

	DB.Delete(&answer)
	c.Redirect(http.StatusFound, "/")
}

// ToggleLike 좋아요 토글. 세션에 방향을 기억하고 DB 카운트도 맞춘다.
func (h *AnswerHandler) ToggleLike(c *gin.Context) {
	state := middleware.State(c)
	id := utils.StringToInt64(c.Param("aid"))

	if _, ok := state.Answers.FindByID(id); !ok {
		question, err := TodayQuestion()
		if err != nil {
			c.Status(http.StatusNotFound)
			return
		}
		h.loadAnswers(c, question.ID)
	}

	liked, count := state.Answers.ToggleLike(id)
	if liked {
		DB.Model(&Answer{}).Where("id = ?", id).
			UpdateColumn("like_count", gorm.Expr("like_count + 1"))
	} else {
		DB.Model(&Answer{}).Where("id = ? AND like_count > 0", id).
			UpdateColumn("like_count", gorm.Expr("like_count - 1"))
	}

	c.JSON(http.StatusOK, gin.H{"liked": liked, "count": count})
}

// CreateComment 댓글 등록 (50자 제한)
func (h *AnswerHandler) CreateComment(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)
	answerID := utils.StringToInt64(c.Param("aid"))

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" {
		handlers.RenderError(c, http.StatusBadRequest, "내용을 입력해주세요")
		return
	}
	if utf8.RuneCountInString(content) > services.CommentMaxLen {
		handlers.RenderError(c, http.StatusBadRequest, "댓글은 50자까지 쓸 수 있어요")
		return
	}

	var answer Answer
	if err := DB.Preload("User").First(&answer, answerID).Error; err != nil {
		handlers.RenderError(c, http.StatusNotFound, "답변을 찾을 수 없어요")
		return
	}

	DB.Create(&Comment{AnswerID: answerID, UserID: me.ID, Content: content})
	middleware.State(c).Notices.Add(store.NoticeTypeComment, answer.User.Name+"님의 답변에 댓글을 남겼어요")
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}

func (h *AnswerHandler) ownComment(c *gin.Context) (Comment, bool) {
	me, _ := middleware.CurrentUser(c)
	id := utils.StringToInt64(c.Param("cid"))

	var comment Comment
	if err := DB.First(&comment, id).Error; err != nil {
		handlers.RenderError(c, http.StatusNotFound, "댓글을 찾을 수 없어요")
		return Comment{}, false
	}
	if comment.UserID != me.ID {
		handlers.RenderError(c, http.StatusForbidden, "내 댓글만 고칠 수 있어요")
		return Comment{}, false
	}
	return comment, true
}

// UpdateComment 댓글 수정
func (h *AnswerHandler) UpdateComment(c *gin.Context) {
	comment, ok := h.ownComment(c)
	if !ok {
		return
	}

	content := strings.TrimSpace(c.PostForm("content"))
	if content == "" || utf8.RuneCountInString(content) > services.CommentMaxLen {
		handlers.RenderError(c, http.StatusBadRequest, "댓글은 1자 이상 50자 이하로 써주세요")
		return
	}

	comment.Content = content
	DB.Save(&comment)
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}

// DeleteComment 댓글 삭제
func (h *AnswerHandler) DeleteComment(c *gin.Context) {
	comment, ok := h.ownComment(c)
	if !ok {
		return
	}

	DB.Delete(&comment)
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}
