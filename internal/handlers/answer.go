package handlers

import (
	"net/http"

	"dadam/internal/api"
	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"
	"dadam/internal/utils"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type AnswerHandler struct {
	questions *services.QuestionService
	answers   *services.AnswerService
}

func NewAnswerHandler() *AnswerHandler {
	return &AnswerHandler{
		questions: services.GetQuestionService(),
		answers:   services.GetAnswerService(),
	}
}

func (h *AnswerHandler) currentQuestionID(c *gin.Context) (int64, bool) {
	ctx := middleware.RequestContext(c)
	question, err := h.questions.Today(ctx)
	if handleAPIError(c, err) {
		return 0, false
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, "오늘의 질문을 불러오지 못했어요")
		return 0, false
	}
	return question.ID, true
}

// Detail 답변 상세와 댓글 스레드
func (h *AnswerHandler) Detail(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))

	answer, ok := state.Answers.FindByID(answerID)
	if !ok {
		// 캐시에 없으면 (새 탭에서 바로 연 경우) 목록부터 채운다
		if qid, ok := h.currentQuestionID(c); ok {
			if _, err := h.answers.Refresh(ctx, state, qid); handleAPIError(c, err) {
				return
			}
		} else {
			return
		}
		if answer, ok = state.Answers.FindByID(answerID); !ok {
			RenderError(c, http.StatusNotFound, "답변을 찾을 수 없어요")
			return
		}
	}

	comments, err := h.answers.Comments(ctx, answerID)
	if handleAPIError(c, err) {
		return
	}

	me, _ := middleware.CurrentUser(c)
	var meUser api.User
	if me != nil {
		meUser = *me
	}
	thread := views.BuildThread(answer, comments, meUser, state.Answers.Liked,
		services.AnswerMaxLen, services.CommentMaxLen)

	Render(c, http.StatusOK, "answer/detail.html", gin.H{
		"Title":  answer.UserName + "님의 답변",
		"Thread": thread,
	})
}

// Update 내 답변 수정
func (h *AnswerHandler) Update(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))

	qid, ok := h.currentQuestionID(c)
	if !ok {
		return
	}

	if err := h.answers.Edit(ctx, state, qid, answerID, c.PostForm("content")); err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}

// Delete 내 답변 삭제
func (h *AnswerHandler) Delete(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))

	qid, ok := h.currentQuestionID(c)
	if !ok {
		return
	}

	if err := h.answers.Delete(ctx, state, qid, answerID); err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/")
}

// ToggleLike 좋아요 토글 (AJAX)
func (h *AnswerHandler) ToggleLike(c *gin.Context) {
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))

	liked, count := h.answers.ToggleLike(state, answerID)
	c.JSON(http.StatusOK, gin.H{"liked": liked, "count": count})
}

// CreateComment 댓글 등록
func (h *AnswerHandler) CreateComment(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))

	_, err := h.answers.AddComment(ctx, state, answerID, c.PostForm("content"))
	if err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}

	if a, ok := state.Answers.FindByID(answerID); ok {
		state.Notices.Add(store.NoticeTypeComment, a.UserName+"님의 답변에 댓글을 남겼어요")
	}
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}

// UpdateComment 댓글 수정
func (h *AnswerHandler) UpdateComment(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))
	commentID := utils.StringToInt64(c.Param("cid"))

	if _, err := h.answers.EditComment(ctx, state, answerID, commentID, c.PostForm("content")); err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}

// DeleteComment 댓글 삭제
func (h *AnswerHandler) DeleteComment(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	state := middleware.State(c)
	answerID := utils.StringToInt64(c.Param("aid"))
	commentID := utils.StringToInt64(c.Param("cid"))

	if _, err := h.answers.DeleteComment(ctx, state, answerID, commentID); err != nil {
		if handleAPIError(c, err) {
			return
		}
		RenderError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.Redirect(http.StatusFound, "/answers/"+c.Param("aid"))
}
