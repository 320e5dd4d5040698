package handlers

import (
	"net/http"

	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"
	"dadam/internal/utils"

	"github.com/gin-gonic/gin"
)

type GameHandler struct {
	games *services.GameService
}

func NewGameHandler() *GameHandler {
	return &GameHandler{
		games: services.GetGameService(),
	}
}

// Index 게임 선택 화면
func (h *GameHandler) Index(c *gin.Context) {
	played, correct := middleware.State(c).Games.QuizScore()
	Render(c, http.StatusOK, "games/index.html", gin.H{
		"Title":       "가족 게임",
		"QuizPlayed":  played,
		"QuizCorrect": correct,
	})
}

// Balance 밸런스 게임. 새로고침해도 같은 판이 나온다.
func (h *GameHandler) Balance(c *gin.Context) {
	state := middleware.State(c)

	game, ok := state.Games.BalanceGame()
	if !ok || c.Query("new") != "" {
		var err error
		game, err = h.games.Balance(middleware.RequestContext(c))
		if handleAPIError(c, err) {
			return
		}
		if err != nil {
			RenderError(c, http.StatusBadGateway, err.Error())
			return
		}
		state.Games.SetBalanceGame(game)
	}

	side, picked := state.Games.BalancePick(game.ID)
	Render(c, http.StatusOK, "games/balance.html", gin.H{
		"Title":  "밸런스 게임",
		"Game":   game,
		"Picked": picked,
		"Side":   side,
	})
}

// PickBalance 한쪽 고르기. 같은 판에 두 번 고르는 건 무시한다.
func (h *GameHandler) PickBalance(c *gin.Context) {
	gameID := c.PostForm("game_id")
	side := c.PostForm("side")

	state := middleware.State(c)
	ok := state.Games.PickBalance(gameID, side)
	if ok {
		state.Notices.AddOnce(store.NoticeTypeGame, "밸런스 게임에 참여했어요")
	}
	c.JSON(http.StatusOK, gin.H{"accepted": ok, "side": side})
}

// Quiz 새 신조어 퀴즈
func (h *GameHandler) Quiz(c *gin.Context) {
	quiz, err := h.games.Quiz(middleware.RequestContext(c))
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, err.Error())
		return
	}

	Render(c, http.StatusOK, "games/quiz.html", gin.H{
		"Title": "신조어 퀴즈",
		"Quiz":  quiz,
	})
}

// AnswerQuiz 보기 고르기 (AJAX). 정답 여부와 해설을 돌려준다.
func (h *GameHandler) AnswerQuiz(c *gin.Context) {
	selected := utils.StringToInt(c.PostForm("selected"))
	correctIndex := utils.StringToInt(c.PostForm("correct_index"))
	explanation := c.PostForm("explanation")

	correct := selected == correctIndex
	state := middleware.State(c)
	state.Games.RecordQuiz(correct)
	state.Notices.AddOnce(store.NoticeTypeGame, "신조어 퀴즈를 풀었어요")

	c.JSON(http.StatusOK, gin.H{
		"correct":     correct,
		"explanation": explanation,
	})
}
