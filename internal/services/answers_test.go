package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dadam/internal/api"
	"dadam/internal/store"
)

func newSession() *store.Session {
	return &store.Session{
		Answers: store.NewAnswerStore(),
		Notices: store.NewNoticeFeed(),
		Games:   store.NewGameState(),
	}
}

func TestCreateAnswerThenRefresh(t *testing.T) {
	var posted string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/questions/1/answers":
			body, _ := io.ReadAll(r.Body)
			posted = string(body)
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/questions/1/answers":
			fmt.Fprint(w, `[{"id":10,"userId":5,"userName":"아빠","content":"오늘 날씨가 좋았다","commentCount":0}]`)
		default:
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	s := NewAnswerService(api.NewClient(server.URL))
	sess := newSession()

	if err := s.Create(context.Background(), sess, 1, "  오늘 날씨가 좋았다  "); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !strings.Contains(posted, "오늘 날씨가 좋았다") {
		t.Errorf("Trimmed content not posted: %s", posted)
	}

	answers := sess.Answers.List()
	if len(answers) != 1 || answers[0].ID != 10 {
		t.Fatalf("Cache not refreshed after create: %+v", answers)
	}
}

func TestCreateAnswerValidation(t *testing.T) {
	s := NewAnswerService(api.NewClient("http://unused.invalid"))
	sess := newSession()

	if err := s.Create(context.Background(), sess, 1, "   "); !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected ErrEmptyContent, got %v", err)
	}
	if err := s.Create(context.Background(), sess, 1, strings.Repeat("가", AnswerMaxLen+1)); !errors.Is(err, ErrAnswerTooLong) {
		t.Errorf("Expected ErrAnswerTooLong, got %v", err)
	}
}

func TestCreateAnswerDuplicate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"message":"이미 답변을 작성했습니다"}`)
	}))
	defer server.Close()

	s := NewAnswerService(api.NewClient(server.URL))
	err := s.Create(context.Background(), newSession(), 1, "두 번째 답변")
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("Expected ErrAlreadyAnswered, got %v", err)
	}
}

func TestCreateAnswerUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	s := NewAnswerService(api.NewClient(server.URL))
	err := s.Create(context.Background(), newSession(), 1, "답변")
	if !errors.Is(err, api.ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized to pass through, got %v", err)
	}
}

func TestEditAnswerPatchesCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			fmt.Fprint(w, `[{"id":10,"userId":5,"content":"원래 답변"}]`)
		case r.Method == http.MethodPatch && r.URL.Path == "/questions/1/answers/10":
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	s := NewAnswerService(api.NewClient(server.URL))
	sess := newSession()
	if _, err := s.Refresh(context.Background(), sess, 1); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if err := s.Edit(context.Background(), sess, 1, 10, "고친 답변"); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if a, _ := sess.Answers.FindByID(10); a.Content != "고친 답변" {
		t.Errorf("Cache not patched: %q", a.Content)
	}
}

func TestAddCommentBumpsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/questions/1/answers":
			fmt.Fprint(w, `[{"id":10,"content":"답변","commentCount":1}]`)
		case r.Method == http.MethodPost && r.URL.Path == "/answers/10/comments":
			w.WriteHeader(http.StatusCreated)
		case r.Method == http.MethodGet && r.URL.Path == "/answers/10/comments":
			fmt.Fprint(w, `[{"commentId":1,"content":"first"},{"commentId":2,"content":"좋다"}]`)
		default:
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	s := NewAnswerService(api.NewClient(server.URL))
	sess := newSession()
	if _, err := s.Refresh(context.Background(), sess, 1); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	comments, err := s.AddComment(context.Background(), sess, 10, "좋다")
	if err != nil {
		t.Fatalf("AddComment failed: %v", err)
	}
	if len(comments) != 2 {
		t.Errorf("Expected 2 comments back, got %d", len(comments))
	}
	if a, _ := sess.Answers.FindByID(10); a.CommentCount != 2 {
		t.Errorf("Expected comment count 2 after optimistic bump, got %d", a.CommentCount)
	}
}

func TestAddCommentTooLong(t *testing.T) {
	s := NewAnswerService(api.NewClient("http://unused.invalid"))
	_, err := s.AddComment(context.Background(), newSession(), 10, strings.Repeat("가", CommentMaxLen+1))
	if !errors.Is(err, ErrCommentTooLong) {
		t.Fatalf("Expected ErrCommentTooLong, got %v", err)
	}
}

func TestDeleteCommentClampsCount(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/questions/1/answers":
			fmt.Fprint(w, `[{"id":10,"content":"답변","commentCount":0}]`)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodGet && r.URL.Path == "/answers/10/comments":
			fmt.Fprint(w, `[]`)
		default:
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer server.Close()

	s := NewAnswerService(api.NewClient(server.URL))
	sess := newSession()
	if _, err := s.Refresh(context.Background(), sess, 1); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if _, err := s.DeleteComment(context.Background(), sess, 10, 7); err != nil {
		t.Fatalf("DeleteComment failed: %v", err)
	}
	if a, _ := sess.Answers.FindByID(10); a.CommentCount != 0 {
		t.Errorf("Count should clamp at 0, got %d", a.CommentCount)
	}
}

func TestMutationBusyKey(t *testing.T) {
	s := NewAnswerService(api.NewClient("http://unused.invalid"))
	sess := newSession()

	// Simulate a request already in flight for the same answer.
	sess.Answers.TryAcquire("answer:10")
	err := s.Edit(context.Background(), sess, 1, 10, "수정")
	if !errors.Is(err, ErrBusy) {
		t.Fatalf("Expected ErrBusy, got %v", err)
	}
}
