package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"dadam/internal/api"
)

func TestFamilyMembersFiltered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[
			{"id":1,"name":"아빠","familyCode":"FAM123"},
			{"id":2,"name":"엄마","familyCode":"FAM123"},
			{"id":3,"name":"남남","familyCode":"OTHER"}
		]`)
	}))
	defer server.Close()

	s := NewFamilyService(api.NewClient(server.URL))
	me := api.User{ID: 1, FamilyCode: "FAM123"}

	members, err := s.Members(context.Background(), me)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("Expected 2 family members, got %d", len(members))
	}
	for _, m := range members {
		if m.FamilyCode != "FAM123" {
			t.Errorf("Stranger leaked into the roster: %+v", m)
		}
	}
}

func TestFamilyMembersFilterFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 코드가 하나도 안 맞는 응답 - 거르면 빈 목록이 된다
		fmt.Fprint(w, `[{"id":4,"name":"할머니","familyCode":""}]`)
	}))
	defer server.Close()

	s := NewFamilyService(api.NewClient(server.URL))
	me := api.User{ID: 1, FamilyCode: "FAM123"}

	members, err := s.Members(context.Background(), me)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 1 {
		t.Fatalf("Filter emptied the roster; expected fallback to the raw list, got %d", len(members))
	}
}

func TestIssueInviteCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/me/family-code" {
			t.Errorf("Unexpected request %s %s", r.Method, r.URL.Path)
		}
		fmt.Fprint(w, `{"familyCode":"FAM777"}`)
	}))
	defer server.Close()

	s := NewFamilyService(api.NewClient(server.URL))
	code, err := s.IssueInviteCode(context.Background())
	if err != nil {
		t.Fatalf("IssueInviteCode failed: %v", err)
	}
	if code != "FAM777" {
		t.Errorf("Expected FAM777, got %q", code)
	}
}

func TestIssueInviteCodeEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer server.Close()

	s := NewFamilyService(api.NewClient(server.URL))
	if _, err := s.IssueInviteCode(context.Background()); err != ErrNoInviteCode {
		t.Fatalf("Expected ErrNoInviteCode, got %v", err)
	}
}
