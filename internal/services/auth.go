package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/mail"
	"strings"

	"dadam/internal/api"
)

var (
	ErrBadEmail      = errors.New("이메일 형식을 확인해주세요")
	ErrEmptyPassword = errors.New("비밀번호를 입력해주세요")
	ErrEmptyName     = errors.New("이름을 입력해주세요")
	ErrLoginFailed   = errors.New("이메일 또는 비밀번호가 맞지 않아요")
)

// AuthService 백엔드 로그인/회원가입 프록시 (원격 모드 전용)
type AuthService struct {
	client *api.Client
}

var authService *AuthService

func GetAuthService() *AuthService {
	if authService == nil {
		authService = NewAuthService(backendClient())
	}
	return authService
}

func NewAuthService(client *api.Client) *AuthService {
	return &AuthService{client: client}
}

// Login 토큰과 프로필을 받아온다
func (s *AuthService) Login(ctx context.Context, email, password string) (api.Session, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return api.Session{}, ErrBadEmail
	}
	if password == "" {
		return api.Session{}, ErrEmptyPassword
	}

	body := map[string]string{"email": email, "password": password}
	var raw json.RawMessage
	if err := s.client.Post(ctx, "/auth/login", body, &raw); err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) && statusErr.Code < 500 {
			return api.Session{}, ErrLoginFailed
		}
		if errors.Is(err, api.ErrUnauthorized) {
			return api.Session{}, ErrLoginFailed
		}
		return api.Session{}, classifyError(err)
	}

	sess := api.DecodeSession(raw)
	if sess.Token == "" {
		return api.Session{}, ErrLoginFailed
	}
	return sess, nil
}

// Signup 가입과 동시에 로그인 세션을 받는다. familyCode 가 있으면
// 그 가족으로 합류한다.
func (s *AuthService) Signup(ctx context.Context, name, email, password, familyRole, familyCode string) (api.Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return api.Session{}, ErrEmptyName
	}
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return api.Session{}, ErrBadEmail
	}
	if password == "" {
		return api.Session{}, ErrEmptyPassword
	}

	body := map[string]string{
		"name":       name,
		"email":      email,
		"password":   password,
		"familyRole": familyRole,
	}
	if code := strings.TrimSpace(familyCode); code != "" {
		body["familyCode"] = code
	}

	var raw json.RawMessage
	if err := s.client.Post(ctx, "/auth/signup", body, &raw); err != nil {
		return api.Session{}, classifyError(err)
	}

	sess := api.DecodeSession(raw)
	if sess.Token == "" {
		// 가입만 되고 토큰이 없는 백엔드 버전은 로그인으로 이어서 처리
		return s.Login(ctx, email, password)
	}
	return sess, nil
}
