package store

import (
	"sync"

	"dadam/internal/api"
)

// GameState tracks a session's progress in the two mini games: the side
// picked per balance game and the quiz tally. The current balance game is
// kept so a reload shows the same round instead of drawing a new one.
type GameState struct {
	mu           sync.Mutex
	balance      *api.BalanceGame
	balancePicks map[string]string // game id -> "A" or "B"
	quizPlayed   int
	quizCorrect  int
}

func NewGameState() *GameState {
	return &GameState{balancePicks: make(map[string]string)}
}

// SetBalanceGame remembers the round being played.
func (g *GameState) SetBalanceGame(game api.BalanceGame) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.balance = &game
}

// BalanceGame returns the round being played, if any.
func (g *GameState) BalanceGame() (api.BalanceGame, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.balance == nil {
		return api.BalanceGame{}, false
	}
	return *g.balance, true
}

// PickBalance records the chosen side for a balance game. The first pick
// wins; repeat picks on the same game are ignored.
func (g *GameState) PickBalance(gameID, side string) bool {
	if side != "A" && side != "B" {
		return false
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, done := g.balancePicks[gameID]; done {
		return false
	}
	g.balancePicks[gameID] = side
	return true
}

func (g *GameState) BalancePick(gameID string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	side, ok := g.balancePicks[gameID]
	return side, ok
}

// RecordQuiz tallies one answered quiz.
func (g *GameState) RecordQuiz(correct bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.quizPlayed++
	if correct {
		g.quizCorrect++
	}
}

func (g *GameState) QuizScore() (played, correct int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.quizPlayed, g.quizCorrect
}
