package legacy

import (
	"math/rand"
	"net/http"

	"dadam/internal/api"
	"dadam/internal/handlers"
	"dadam/internal/middleware"
	"dadam/internal/store"
	"dadam/internal/utils"

	"github.com/gin-gonic/gin"
)

// 로컬 모드는 생성 백엔드가 없어서 내장 문제 은행에서 뽑는다.

var balanceBank = []api.BalanceGame{
	{ID: "b1", Question: "여행 간다면?", OptionA: "산으로 힐링", OptionB: "바다로 풍덩"},
	{ID: "b2", Question: "주말 아침엔?", OptionA: "늦잠 자기", OptionB: "일찍 일어나 브런치"},
	{ID: "b3", Question: "치킨을 먹는다면?", OptionA: "후라이드", OptionB: "양념"},
	{ID: "b4", Question: "평생 하나만 먹어야 한다면?", OptionA: "밥", OptionB: "면"},
	{ID: "b5", Question: "가족 모임 장소는?", OptionA: "집에서 오붓하게", OptionB: "맛집 탐방"},
}

var quizBank = []api.SlangQuiz{
	{ID: "q1", Question: "'갓생'의 뜻은?", Options: []string{"부지런하고 알찬 삶", "게으른 삶", "신을 믿는 삶", "짧은 인생"}, CorrectIndex: 0, Explanation: "God + 인생. 부지런하고 모범적인 삶을 뜻해요"},
	{ID: "q2", Question: "'억까'의 뜻은?", Options: []string{"엄청 비싸다", "억지로 까내리기", "억울한 까마귀", "아껴 쓰기"}, CorrectIndex: 1, Explanation: "'억지로 깐다'의 줄임말이에요"},
	{ID: "q3", Question: "'점메추'의 뜻은?", Options: []string{"점심 메뉴 추천", "점점 메마른 추억", "점수 메기기 추첨", "점원 매너 추락"}, CorrectIndex: 0, Explanation: "'점심 메뉴 추천'의 줄임말이에요"},
	{ID: "q4", Question: "'스불재'의 뜻은?", Options: []string{"스스로 불러온 재앙", "스승의 불같은 재능", "스트레스 불면 재채기", "스페인 불꽃 축제"}, CorrectIndex: 0, Explanation: "'스스로 불러온 재앙'의 줄임말이에요"},
}

type GameHandler struct{}

func NewGameHandler() *GameHandler {
	return &GameHandler{}
}

func (h *GameHandler) Index(c *gin.Context) {
	played, correct := middleware.State(c).Games.QuizScore()
	handlers.Render(c, http.StatusOK, "games/index.html", gin.H{
		"Title":       "가족 게임",
		"QuizPlayed":  played,
		"QuizCorrect": correct,
	})
}

type balancePicker struct {
	Name        string
	AvatarLabel string
}

// BalanceResult 한 판의 투표 현황
type BalanceResult struct {
	ACount, BCount     int
	APercent, BPercent int
	APickers, BPickers []balancePicker
}

// tallyBalance 선택들을 양쪽 표와 퍼센트로 집계한다.
func tallyBalance(rows []GameSelection, names map[int64]string) BalanceResult {
	var result BalanceResult
	for _, row := range rows {
		picker := balancePicker{
			Name:        names[row.UserID],
			AvatarLabel: utils.AvatarLabel(names[row.UserID]),
		}
		switch row.Side {
		case "A":
			result.ACount++
			result.APickers = append(result.APickers, picker)
		case "B":
			result.BCount++
			result.BPickers = append(result.BPickers, picker)
		}
	}
	total := result.ACount + result.BCount
	if total > 0 {
		result.APercent = result.ACount * 100 / total
		result.BPercent = 100 - result.APercent
	}
	return result
}

// balanceResult 우리 가족이 이 판에 던진 표를 집계한다.
func (h *GameHandler) balanceResult(gameID string, me *api.User) BalanceResult {
	var family []User
	DB.Where("family_code = ?", me.FamilyCode).Find(&family)

	names := make(map[int64]string, len(family))
	ids := make([]int64, 0, len(family))
	for _, u := range family {
		names[u.ID] = u.Name
		ids = append(ids, u.ID)
	}

	var rows []GameSelection
	DB.Where("game_id = ? AND user_id IN ?", gameID, ids).Find(&rows)
	return tallyBalance(rows, names)
}

// Balance 밸런스 게임. 새로고침해도 같은 판이 나오고, 골랐으면 결과가 보인다.
func (h *GameHandler) Balance(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)
	state := middleware.State(c)

	game, ok := state.Games.BalanceGame()
	if !ok || c.Query("new") != "" {
		game = balanceBank[rand.Intn(len(balanceBank))]
		state.Games.SetBalanceGame(game)
	}

	var mine GameSelection
	picked := DB.Where("game_id = ? AND user_id = ?", game.ID, me.ID).First(&mine).Error == nil

	data := gin.H{
		"Title":     "밸런스 게임",
		"Game":      game,
		"Picked":    picked,
		"Side":      mine.Side,
		"CanRepick": true,
	}
	if picked {
		data["Result"] = h.balanceResult(game.ID, me)
	}
	handlers.Render(c, http.StatusOK, "games/balance.html", data)
}

// PickBalance 한쪽 고르기. 다시 고르면 표가 옮겨간다.
func (h *GameHandler) PickBalance(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)
	gameID := c.PostForm("game_id")
	side := c.PostForm("side")

	if gameID == "" || (side != "A" && side != "B") {
		c.JSON(http.StatusOK, gin.H{"accepted": false})
		return
	}

	var sel GameSelection
	if err := DB.Where("game_id = ? AND user_id = ?", gameID, me.ID).First(&sel).Error; err == nil {
		if sel.Side != side {
			sel.Side = side
			DB.Save(&sel)
		}
	} else {
		DB.Create(&GameSelection{GameID: gameID, UserID: me.ID, Side: side})
	}

	middleware.State(c).Notices.AddOnce(store.NoticeTypeGame, "밸런스 게임에 참여했어요")
	c.JSON(http.StatusOK, gin.H{"accepted": true, "side": side})
}

func (h *GameHandler) Quiz(c *gin.Context) {
	quiz := quizBank[rand.Intn(len(quizBank))]
	handlers.Render(c, http.StatusOK, "games/quiz.html", gin.H{
		"Title": "신조어 퀴즈",
		"Quiz":  quiz,
	})
}

func (h *GameHandler) AnswerQuiz(c *gin.Context) {
	selected := utils.StringToInt(c.PostForm("selected"))
	correctIndex := utils.StringToInt(c.PostForm("correct_index"))

	correct := selected == correctIndex
	state := middleware.State(c)
	state.Games.RecordQuiz(correct)
	state.Notices.AddOnce(store.NoticeTypeGame, "신조어 퀴즈를 풀었어요")

	c.JSON(http.StatusOK, gin.H{
		"correct":     correct,
		"explanation": c.PostForm("explanation"),
	})
}
