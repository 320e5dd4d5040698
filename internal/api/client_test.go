package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientBearerToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			t.Errorf("Expected Bearer test-token, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := WithToken(context.Background(), "test-token")

	var raw json.RawMessage
	if err := client.Get(ctx, "/questions/today", &raw); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
}

func TestClientOmitsEmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Errorf("Authorization header should be absent, got %q", r.Header.Get("Authorization"))
		}
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL)

	// Both no token and a blank token must leave the header off entirely.
	var raw json.RawMessage
	if err := client.Get(context.Background(), "/questions/today", &raw); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if err := client.Get(WithToken(context.Background(), "  "), "/questions/today", &raw); err != nil {
		t.Fatalf("Get with blank token failed: %v", err)
	}
}

func TestClientUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Get(context.Background(), "/users/family", nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("Expected ErrUnauthorized, got %v", err)
	}
}

func TestClientStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"이미 답변을 작성했습니다"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	err := client.Post(context.Background(), "/questions/1/answers", map[string]string{"content": "안녕"}, nil)

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("Expected StatusError, got %v", err)
	}
	if statusErr.Code != http.StatusConflict {
		t.Errorf("Expected 409, got %d", statusErr.Code)
	}
	if statusErr.Body == "" {
		t.Error("Expected the response body to be carried on the error")
	}
}

func TestClientEmptyBodySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("Expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Delete(context.Background(), "/questions/1/answers/2"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestClientUnparseableBodyIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	var raw json.RawMessage
	if err := client.Post(context.Background(), "/users/me/family-code", nil, &raw); err != nil {
		t.Fatalf("Post failed: %v", err)
	}
}
