package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dadam/internal/api"
	"dadam/internal/utils"
)

func TestTodayQuestionCached(t *testing.T) {
	utils.GetCache().Delete("question:today")

	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		fmt.Fprint(w, `{"id":3,"content":"오늘 가장 고마웠던 사람은?"}`)
	}))
	defer server.Close()

	s := NewQuestionService(api.NewClient(server.URL))

	for i := 0; i < 3; i++ {
		q, err := s.Today(context.Background())
		if err != nil {
			t.Fatalf("Today failed: %v", err)
		}
		if q.ID != 3 {
			t.Fatalf("Expected question 3, got %d", q.ID)
		}
	}
	if hits != 1 {
		t.Errorf("Expected 1 backend hit with the cache warm, got %d", hits)
	}

	utils.GetCache().Delete("question:today")
}

func TestQuestionByDatePrimaryPath(t *testing.T) {
	utils.GetCache().Delete("archive:2026-08-01")

	var paths []string
	// /questions/history 만 아는 백엔드. 한 번에 맞아야 한다.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/questions/history" || r.URL.Query().Get("date") != "2026-08-01" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"questionId":7,"question":"여름에 가고 싶은 곳은?","answers":[{"id":1,"content":"바다"}]}`)
	}))
	defer server.Close()

	s := NewQuestionService(api.NewClient(server.URL))
	q, answers, err := s.ByDate(context.Background(), "2026-08-01")
	if err != nil {
		t.Fatalf("ByDate failed: %v", err)
	}
	if q.ID != 7 {
		t.Errorf("Expected question 7, got %d", q.ID)
	}
	if len(answers) != 1 {
		t.Errorf("Expected 1 embedded answer, got %d", len(answers))
	}
	if len(paths) != 1 || paths[0] != "/questions/history" {
		t.Errorf("Expected a single hit on /questions/history, saw %v", paths)
	}

	utils.GetCache().Delete("archive:2026-08-01")
}

func TestQuestionByDateFallbacks(t *testing.T) {
	utils.GetCache().Delete("archive:2026-08-02")

	var paths []string
	// 옛 백엔드 흉내: /questions/history 는 모르고 /questions 만 안다
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		if r.URL.Path != "/questions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		fmt.Fprint(w, `{"questionId":8,"question":"올해 가장 기뻤던 일은?"}`)
	}))
	defer server.Close()

	s := NewQuestionService(api.NewClient(server.URL))
	q, _, err := s.ByDate(context.Background(), "2026-08-02")
	if err != nil {
		t.Fatalf("ByDate failed: %v", err)
	}
	if q.ID != 8 {
		t.Errorf("Expected question 8, got %d", q.ID)
	}
	want := []string{"/questions/history", "/questions"}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("Expected fallback order %v, saw %v", want, paths)
	}

	utils.GetCache().Delete("archive:2026-08-02")
}

func TestQuestionByDateAllFail(t *testing.T) {
	utils.GetCache().Delete("archive:2026-01-01")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	s := NewQuestionService(api.NewClient(server.URL))
	if _, _, err := s.ByDate(context.Background(), "2026-01-01"); err == nil {
		t.Fatal("Expected an error when every path fails")
	}
}
