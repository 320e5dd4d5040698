package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dadam/internal/api"
	"dadam/internal/utils"
)

var ErrNoQuestion = errors.New("해당 날짜의 질문을 찾을 수 없어요")

// QuestionService 오늘의 질문과 지난 질문 아카이브
type QuestionService struct {
	client *api.Client
}

var questionService *QuestionService

func GetQuestionService() *QuestionService {
	if questionService == nil {
		questionService = NewQuestionService(backendClient())
	}
	return questionService
}

func NewQuestionService(client *api.Client) *QuestionService {
	return &QuestionService{client: client}
}

// Today 오늘의 질문. 하루 종일 같은 값이라 5분 캐시를 둔다.
func (s *QuestionService) Today(ctx context.Context) (api.Question, error) {
	cache := utils.GetCache()
	if cached := cache.Get("question:today"); cached != nil {
		if q, ok := cached.(api.Question); ok {
			return q, nil
		}
	}

	var raw json.RawMessage
	if err := s.client.Get(ctx, "/questions/today", &raw); err != nil {
		return api.Question{}, classifyError(err)
	}

	q, _ := api.DecodeQuestion(raw)
	if q.ID == 0 && q.Text == "" {
		return api.Question{}, ErrNoQuestion
	}

	cache.Set("question:today", q, 5*time.Minute)
	return q, nil
}

// 아카이브 경로는 백엔드 버전마다 달라서 순서대로 다 찔러본다
var archivePaths = []string{
	"/questions/history?date=%s",
	"/questions?date=%s",
	"/questions/date/%s",
}

// ByDate 지난 날짜의 질문과 그날의 답변들. date 는 yyyy-mm-dd.
func (s *QuestionService) ByDate(ctx context.Context, date string) (api.Question, []api.Answer, error) {
	cache := utils.GetCache()
	cacheKey := "archive:" + date
	if cached := cache.Get(cacheKey); cached != nil {
		if entry, ok := cached.(archiveEntry); ok {
			return entry.Question, entry.Answers, nil
		}
	}

	var lastErr error
	for _, path := range archivePaths {
		var raw json.RawMessage
		err := s.client.Get(ctx, fmt.Sprintf(path, date), &raw)
		if err != nil {
			if errors.Is(err, api.ErrUnauthorized) {
				return api.Question{}, nil, err
			}
			lastErr = err
			continue
		}

		q, answers := api.DecodeQuestion(raw)
		if q.ID == 0 && q.Text == "" {
			continue
		}

		cache.Set(cacheKey, archiveEntry{Question: q, Answers: answers}, 10*time.Minute)
		return q, answers, nil
	}

	if lastErr != nil {
		return api.Question{}, nil, classifyError(lastErr)
	}
	return api.Question{}, nil, ErrNoQuestion
}

type archiveEntry struct {
	Question api.Question
	Answers  []api.Answer
}
