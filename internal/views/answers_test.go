package views

import (
	"strings"
	"testing"
	"time"

	"dadam/internal/api"
)

func TestPreview(t *testing.T) {
	short := "짧은 답변"
	if got := Preview(short); got != short {
		t.Errorf("Short content should pass through, got %q", got)
	}

	long := strings.Repeat("가", 71)
	got := Preview(long)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Long content should end with ellipsis, got %q", got)
	}
	if want := strings.Repeat("가", 70) + "..."; got != want {
		t.Errorf("Expected 70 runes + ellipsis, got %d runes", len([]rune(got)))
	}
}

func TestTimeLabel(t *testing.T) {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 9, 5, 0, 0, time.Local)
	if got := TimeLabel(today); got != "오늘 · 09:05" {
		t.Errorf("Expected 오늘 · 09:05, got %q", got)
	}

	past := time.Date(now.Year()-1, 3, 2, 14, 30, 0, 0, time.Local)
	if got := TimeLabel(past); got != "3월 2일 · 14:30" {
		t.Errorf("Expected 3월 2일 · 14:30, got %q", got)
	}

	if got := TimeLabel(time.Time{}); got != "" {
		t.Errorf("Zero time should give empty label, got %q", got)
	}
}

func TestBuildAnswerListEmpty(t *testing.T) {
	view := BuildAnswerList(nil, api.User{ID: 1}, nil, 0)
	if view.EmptyMessage != EmptyListMessage {
		t.Errorf("Expected fixed empty message, got %q", view.EmptyMessage)
	}
	if view.Pill != "1명 중 0명 참여" {
		t.Errorf("Family total should floor at 1, got %q", view.Pill)
	}
}

func TestBuildAnswerListParticipation(t *testing.T) {
	answers := []api.Answer{
		{ID: 1, UserID: 10, UserName: "아빠", Content: "답변"},
		{ID: 2, UserID: 11, UserName: "엄마", Content: "답변"},
		{ID: 3, UserID: 10, UserName: "아빠", Content: "중복은 안 센다"},
	}
	view := BuildAnswerList(answers, api.User{ID: 10}, nil, 4)
	if view.Participants != 2 {
		t.Errorf("Expected 2 participants, got %d", view.Participants)
	}
	if view.Pill != "4명 중 2명 참여" {
		t.Errorf("Expected 4명 중 2명 참여, got %q", view.Pill)
	}
	if !view.HasAnswered || view.MyAnswerID != 1 {
		t.Errorf("My answer not detected: %+v", view)
	}
}

func TestOwnershipFailsClosed(t *testing.T) {
	me := api.User{ID: 10, Name: "아빠"}

	// ID 가 있으면 이름이 같아도 ID 로만 본다
	other := api.Answer{ID: 1, UserID: 11, UserName: "아빠"}
	if isMine(other, me) {
		t.Error("Same name with different id should not be mine")
	}

	// 양쪽 다 ID 가 없을 때만 이름 비교
	legacy := api.Answer{ID: 2, UserID: 0, UserName: "아빠"}
	if isMine(legacy, api.User{ID: 0, Name: "아빠"}) == false {
		t.Error("Name match with no ids should be mine")
	}
	if isMine(legacy, me) {
		t.Error("My id present but answer id missing: ambiguous, treat as not mine")
	}

	// 아무 정보도 없으면 남의 글
	if isMine(api.Answer{}, api.User{}) {
		t.Error("No identity at all should not be mine")
	}
}

func TestBuildThread(t *testing.T) {
	answer := api.Answer{ID: 5, UserID: 10, UserName: "아빠", Content: "**굵은** 글씨", LikeCount: 2}
	comments := []api.Comment{
		{ID: 1, UserID: 11, UserName: "엄마", Content: "좋네요"},
		{ID: 2, UserID: 10, UserName: "아빠", Content: "고마워"},
	}

	view := BuildThread(answer, comments, api.User{ID: 10, Name: "아빠"}, func(int64) bool { return true }, 500, 50)
	if !view.CanModify {
		t.Error("Owner should be able to modify")
	}
	if !strings.Contains(string(view.ContentHTML), "<strong>굵은</strong>") {
		t.Errorf("Markdown not rendered: %s", view.ContentHTML)
	}
	// 수정 폼에는 렌더링 전의 원문이 들어가야 한다
	if view.Answer.Content != "**굵은** 글씨" {
		t.Errorf("Raw content not carried for the edit form: %q", view.Answer.Content)
	}
	if len(view.Comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(view.Comments))
	}
	if view.Comments[0].IsMine || !view.Comments[1].IsMine {
		t.Error("Comment ownership wrong")
	}
	if view.Comments[1].Content != "고마워" {
		t.Errorf("Raw comment content not carried for the edit form: %q", view.Comments[1].Content)
	}
	if !view.Answer.Liked {
		t.Error("Liked flag not carried")
	}
	if view.AnswerMax != 500 || view.CommentMax != 50 {
		t.Error("Caps not surfaced")
	}
}
