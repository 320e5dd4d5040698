package services

import (
	"encoding/json"
	"errors"
	"os"
	"strings"

	"dadam/internal/api"
)

// 원격 모드: DADAM_API_BASE 가 있으면 백엔드 API 를 쓰고,
// 없으면 로컬 DB 모드(internal/legacy)로 돈다.

var backendClientInstance *api.Client

// RemoteEnabled 백엔드 프록시 모드 여부
func RemoteEnabled() bool {
	return strings.TrimSpace(os.Getenv("DADAM_API_BASE")) != ""
}

func backendClient() *api.Client {
	if backendClientInstance == nil {
		backendClientInstance = api.NewClient(strings.TrimSpace(os.Getenv("DADAM_API_BASE")))
	}
	return backendClientInstance
}

// 사용자에게 그대로 보여주는 메시지들
var (
	ErrEmptyContent    = errors.New("내용을 입력해주세요")
	ErrAnswerTooLong   = errors.New("답변은 500자까지 쓸 수 있어요")
	ErrCommentTooLong  = errors.New("댓글은 50자까지 쓸 수 있어요")
	ErrAlreadyAnswered = errors.New("이미 답변을 작성했습니다")
	ErrBusy            = errors.New("처리 중이에요. 잠시만 기다려주세요")
)

// classifyError 백엔드 에러를 사용자 메시지로 바꾼다.
// 401 은 api.ErrUnauthorized 그대로 올려서 로그아웃 처리로 이어진다.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		return err
	}
	var statusErr *api.StatusError
	if errors.As(err, &statusErr) {
		if strings.Contains(statusErr.Body, "이미 답변") {
			return ErrAlreadyAnswered
		}
		if msg := backendMessage(statusErr.Body); msg != "" {
			return errors.New(msg)
		}
	}
	return err
}

func backendMessage(body string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err != nil {
		return ""
	}
	if payload.Message != "" {
		return payload.Message
	}
	return payload.Error
}
