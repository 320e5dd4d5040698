package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"dadam/internal/api"
	"dadam/internal/store"
)

const (
	AnswerMaxLen  = 500
	CommentMaxLen = 50
)

// AnswerService 오늘의 질문 답변 스레드의 읽기/쓰기 조율.
// 쓰기는 항상 백엔드 먼저, 성공하면 세션 캐시를 따라 맞춘다.
type AnswerService struct {
	client *api.Client
}

var answerService *AnswerService

func GetAnswerService() *AnswerService {
	if answerService == nil {
		answerService = NewAnswerService(backendClient())
	}
	return answerService
}

func NewAnswerService(client *api.Client) *AnswerService {
	return &AnswerService{client: client}
}

// Refresh 목록을 다시 받아 세션 캐시를 교체한다. 받는 사이에 쓰기가
// 끼어들었으면 그 결과는 버리고 캐시를 그대로 둔다.
func (s *AnswerService) Refresh(ctx context.Context, sess *store.Session, questionID int64) ([]api.Answer, error) {
	token := sess.Answers.BeginRefresh()

	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("/questions/%d/answers", questionID), &raw); err != nil {
		return nil, classifyError(err)
	}

	sess.Answers.Replace(token, api.DecodeAnswers(raw))
	return sess.Answers.List(), nil
}

// Cached 서버에 다녀오지 않고 캐시만 돌려준다.
func (s *AnswerService) Cached(sess *store.Session) []api.Answer {
	return sess.Answers.List()
}

func validateAnswer(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > AnswerMaxLen {
		return "", ErrAnswerTooLong
	}
	return content, nil
}

func validateComment(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > CommentMaxLen {
		return "", ErrCommentTooLong
	}
	return content, nil
}

// Create 답변 등록. 한 질문에 한 사람이 하나만 쓸 수 있고, 중복이면
// 백엔드가 거절한 메시지를 그대로 돌려준다.
func (s *AnswerService) Create(ctx context.Context, sess *store.Session, questionID int64, content string) error {
	content, err := validateAnswer(content)
	if err != nil {
		return err
	}

	if !sess.Answers.TryAcquire("answer:create") {
		return ErrBusy
	}
	defer sess.Answers.Release("answer:create")

	path := fmt.Sprintf("/questions/%d/answers", questionID)
	if err := s.client.Post(ctx, path, map[string]string{"content": content}, nil); err != nil {
		return classifyError(err)
	}

	sess.Answers.MarkMutated()
	_, err = s.Refresh(ctx, sess, questionID)
	return err
}

// Edit 내 답변 수정. 성공하면 캐시의 본문만 바꾸고 전체 목록은 건드리지 않는다.
func (s *AnswerService) Edit(ctx context.Context, sess *store.Session, questionID, answerID int64, content string) error {
	content, err := validateAnswer(content)
	if err != nil {
		return err
	}

	key := fmt.Sprintf("answer:%d", answerID)
	if !sess.Answers.TryAcquire(key) {
		return ErrBusy
	}
	defer sess.Answers.Release(key)

	path := fmt.Sprintf("/questions/%d/answers/%d", questionID, answerID)
	if err := s.client.Patch(ctx, path, map[string]string{"content": content}, nil); err != nil {
		return classifyError(err)
	}

	sess.Answers.MarkMutated()
	sess.Answers.ApplyPatch(answerID, content)
	return nil
}

// Delete 내 답변 삭제. 캐시에서 바로 지우고 목록을 다시 받는다.
func (s *AnswerService) Delete(ctx context.Context, sess *store.Session, questionID, answerID int64) error {
	key := fmt.Sprintf("answer:%d", answerID)
	if !sess.Answers.TryAcquire(key) {
		return ErrBusy
	}
	defer sess.Answers.Release(key)

	path := fmt.Sprintf("/questions/%d/answers/%d", questionID, answerID)
	if err := s.client.Delete(ctx, path); err != nil {
		return classifyError(err)
	}

	sess.Answers.MarkMutated()
	sess.Answers.Remove(answerID)
	_, err := s.Refresh(ctx, sess, questionID)
	return err
}

// Comments 한 답변의 댓글 목록
func (s *AnswerService) Comments(ctx context.Context, answerID int64) ([]api.Comment, error) {
	var raw json.RawMessage
	if err := s.client.Get(ctx, fmt.Sprintf("/answers/%d/comments", answerID), &raw); err != nil {
		return nil, classifyError(err)
	}
	return api.DecodeComments(raw), nil
}

// AddComment 댓글 등록. 목록 전체를 다시 받는 대신 해당 답변의
// 댓글 수만 +1 해 두고, 다음 새로고침이 진짜 값으로 덮는다.
func (s *AnswerService) AddComment(ctx context.Context, sess *store.Session, answerID int64, content string) ([]api.Comment, error) {
	content, err := validateComment(content)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("comment:%d", answerID)
	if !sess.Answers.TryAcquire(key) {
		return nil, ErrBusy
	}
	defer sess.Answers.Release(key)

	path := fmt.Sprintf("/answers/%d/comments", answerID)
	if err := s.client.Post(ctx, path, map[string]string{"content": content}, nil); err != nil {
		return nil, classifyError(err)
	}

	sess.Answers.MarkMutated()
	sess.Answers.AdjustCommentCount(answerID, +1)
	return s.Comments(ctx, answerID)
}

// EditComment 댓글 수정
func (s *AnswerService) EditComment(ctx context.Context, sess *store.Session, answerID, commentID int64, content string) ([]api.Comment, error) {
	content, err := validateComment(content)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("comment:%d:%d", answerID, commentID)
	if !sess.Answers.TryAcquire(key) {
		return nil, ErrBusy
	}
	defer sess.Answers.Release(key)

	path := fmt.Sprintf("/answers/%d/comments/%d", answerID, commentID)
	if err := s.client.Put(ctx, path, map[string]string{"content": content}, nil); err != nil {
		return nil, classifyError(err)
	}

	sess.Answers.MarkMutated()
	return s.Comments(ctx, answerID)
}

// DeleteComment 댓글 삭제, 댓글 수 -1 (0 아래로는 안 내려간다)
func (s *AnswerService) DeleteComment(ctx context.Context, sess *store.Session, answerID, commentID int64) ([]api.Comment, error) {
	key := fmt.Sprintf("comment:%d:%d", answerID, commentID)
	if !sess.Answers.TryAcquire(key) {
		return nil, ErrBusy
	}
	defer sess.Answers.Release(key)

	path := fmt.Sprintf("/answers/%d/comments/%d", answerID, commentID)
	if err := s.client.Delete(ctx, path); err != nil {
		return nil, classifyError(err)
	}

	sess.Answers.MarkMutated()
	sess.Answers.AdjustCommentCount(answerID, -1)
	return s.Comments(ctx, answerID)
}

// ToggleLike 좋아요는 세션 안에서만 사는 토글이다
func (s *AnswerService) ToggleLike(sess *store.Session, answerID int64) (liked bool, count int) {
	return sess.Answers.ToggleLike(answerID)
}
