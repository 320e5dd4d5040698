package services

import (
	"context"
	"encoding/json"
	"errors"

	"dadam/internal/api"
)

var ErrGameUnavailable = errors.New("게임을 불러오지 못했어요. 잠시 후 다시 해주세요")

// GameService 밸런스 게임과 신조어 퀴즈 생성
type GameService struct {
	client *api.Client
}

var gameService *GameService

func GetGameService() *GameService {
	if gameService == nil {
		gameService = NewGameService(backendClient())
	}
	return gameService
}

func NewGameService(client *api.Client) *GameService {
	return &GameService{client: client}
}

// Balance 새 밸런스 게임 한 판
func (s *GameService) Balance(ctx context.Context) (api.BalanceGame, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/balance/generate", nil, &raw); err != nil {
		return api.BalanceGame{}, classifyError(err)
	}

	game := api.DecodeBalanceGame(raw)
	if game.Question == "" || game.OptionA == "" || game.OptionB == "" {
		return api.BalanceGame{}, ErrGameUnavailable
	}
	return game, nil
}

// Quiz 새 신조어 퀴즈 한 문제
func (s *GameService) Quiz(ctx context.Context) (api.SlangQuiz, error) {
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/quiz/generate", nil, &raw); err != nil {
		return api.SlangQuiz{}, classifyError(err)
	}

	quiz := api.DecodeSlangQuiz(raw)
	if quiz.Question == "" || len(quiz.Options) < 2 {
		return api.SlangQuiz{}, ErrGameUnavailable
	}
	if quiz.CorrectIndex < 0 || quiz.CorrectIndex >= len(quiz.Options) {
		return api.SlangQuiz{}, ErrGameUnavailable
	}
	return quiz, nil
}
