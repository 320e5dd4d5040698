package store

import (
	"testing"
	"time"

	"dadam/internal/api"
)

func sample(ids ...int64) []api.Answer {
	answers := make([]api.Answer, 0, len(ids))
	base := time.Date(2026, 8, 29, 9, 0, 0, 0, time.Local)
	for i, id := range ids {
		answers = append(answers, api.Answer{
			ID:        id,
			UserID:    id,
			UserName:  "가족",
			Content:   "답변",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
	}
	return answers
}

func TestReplaceRejectsStaleToken(t *testing.T) {
	s := NewAnswerStore()
	s.Replace(s.BeginRefresh(), sample(1, 2))

	// A refresh starts, then a delete completes before its response lands.
	token := s.BeginRefresh()
	s.Remove(2)
	s.MarkMutated()

	if s.Replace(token, sample(1, 2)) {
		t.Fatal("Stale refresh should have been rejected")
	}
	if _, ok := s.FindByID(2); ok {
		t.Error("Rejected refresh resurrected the deleted answer")
	}

	// A refresh started after the mutation goes through.
	if !s.Replace(s.BeginRefresh(), sample(1)) {
		t.Error("Fresh refresh should have been accepted")
	}
}

func TestReplaceOrdersOldestFirst(t *testing.T) {
	s := NewAnswerStore()
	answers := sample(1, 2, 3)
	// Hand them over newest first.
	reversed := []api.Answer{answers[2], answers[1], answers[0]}
	s.Replace(s.BeginRefresh(), reversed)

	got := s.List()
	for i, want := range []int64{1, 2, 3} {
		if got[i].ID != want {
			t.Fatalf("Position %d: expected id %d, got %d", i, want, got[i].ID)
		}
	}
}

func TestAdjustCommentCountClamps(t *testing.T) {
	s := NewAnswerStore()
	s.Replace(s.BeginRefresh(), sample(1))

	s.AdjustCommentCount(1, +1)
	if a, _ := s.FindByID(1); a.CommentCount != 1 {
		t.Fatalf("Expected count 1, got %d", a.CommentCount)
	}

	s.AdjustCommentCount(1, -1)
	s.AdjustCommentCount(1, -1)
	if a, _ := s.FindByID(1); a.CommentCount != 0 {
		t.Errorf("Count should clamp at 0, got %d", a.CommentCount)
	}
}

func TestApplyPatchAndRemove(t *testing.T) {
	s := NewAnswerStore()
	s.Replace(s.BeginRefresh(), sample(1, 2))

	if !s.ApplyPatch(2, "고친 답변") {
		t.Fatal("Patch on existing answer failed")
	}
	if a, _ := s.FindByID(2); a.Content != "고친 답변" {
		t.Errorf("Patch not applied: %q", a.Content)
	}
	if s.ApplyPatch(99, "없음") {
		t.Error("Patch on missing answer should report false")
	}

	if !s.Remove(1) {
		t.Fatal("Remove on existing answer failed")
	}
	if len(s.List()) != 1 {
		t.Errorf("Expected 1 answer left, got %d", len(s.List()))
	}
}

func TestInflightKeys(t *testing.T) {
	s := NewAnswerStore()

	if !s.TryAcquire("comment:5") {
		t.Fatal("First acquire should succeed")
	}
	if s.TryAcquire("comment:5") {
		t.Error("Second acquire on the same key should fail")
	}
	if !s.TryAcquire("comment:6") {
		t.Error("Different key should be independent")
	}

	s.Release("comment:5")
	if !s.TryAcquire("comment:5") {
		t.Error("Acquire after release should succeed")
	}
}

func TestToggleLike(t *testing.T) {
	s := NewAnswerStore()
	answers := sample(1)
	answers[0].LikeCount = 3
	s.Replace(s.BeginRefresh(), answers)

	liked, count := s.ToggleLike(1)
	if !liked || count != 4 {
		t.Fatalf("Expected liked with count 4, got %v %d", liked, count)
	}
	liked, count = s.ToggleLike(1)
	if liked || count != 3 {
		t.Fatalf("Expected unliked with count 3, got %v %d", liked, count)
	}

	if liked, _ := s.ToggleLike(99); liked {
		t.Error("Toggling a missing answer should be a no-op")
	}
}

func TestResetClearsEverything(t *testing.T) {
	s := NewAnswerStore()
	s.Replace(s.BeginRefresh(), sample(1))
	s.ToggleLike(1)
	s.TryAcquire("answer:1")
	s.MarkMutated()

	s.Reset()

	if len(s.List()) != 0 {
		t.Error("Answers survived Reset")
	}
	if s.Liked(1) {
		t.Error("Likes survived Reset")
	}
	if !s.TryAcquire("answer:1") {
		t.Error("In-flight keys survived Reset")
	}
}

func TestNoticeFeedCapAndUnread(t *testing.T) {
	f := NewNoticeFeed()
	for i := 0; i < noticeCap+10; i++ {
		f.Add(NoticeTypeSystem, "알림")
	}
	if len(f.List()) != noticeCap {
		t.Fatalf("Expected %d notices, got %d", noticeCap, len(f.List()))
	}
	if f.Unread() != noticeCap {
		t.Fatalf("Expected %d unread, got %d", noticeCap, f.Unread())
	}

	first := f.List()[0]
	f.MarkRead(first.ID)
	if f.Unread() != noticeCap-1 {
		t.Errorf("Expected %d unread after MarkRead, got %d", noticeCap-1, f.Unread())
	}

	f.ReadAll()
	if f.Unread() != 0 {
		t.Errorf("Expected 0 unread after ReadAll, got %d", f.Unread())
	}
}

func TestNoticeAddOnce(t *testing.T) {
	f := NewNoticeFeed()
	if !f.AddOnce(NoticeTypeSchedule, "내일 약속이 있어요: 저녁") {
		t.Fatal("First AddOnce should add")
	}
	if f.AddOnce(NoticeTypeSchedule, "내일 약속이 있어요: 저녁") {
		t.Error("Duplicate AddOnce should be skipped")
	}
	if !f.AddOnce(NoticeTypeSchedule, "내일 약속이 있어요: 나들이") {
		t.Error("Different message should still add")
	}
	if len(f.List()) != 2 {
		t.Errorf("Expected 2 notices, got %d", len(f.List()))
	}
}

func TestBalanceGameCarriedInSession(t *testing.T) {
	g := NewGameState()
	if _, ok := g.BalanceGame(); ok {
		t.Fatal("No game should be set initially")
	}

	g.SetBalanceGame(api.BalanceGame{ID: "b1", Question: "여행 간다면?"})
	game, ok := g.BalanceGame()
	if !ok || game.ID != "b1" {
		t.Fatalf("Expected the stored round back, got %+v %v", game, ok)
	}
}

func TestBalancePickFirstWins(t *testing.T) {
	g := NewGameState()
	if !g.PickBalance("g1", "A") {
		t.Fatal("First pick should succeed")
	}
	if g.PickBalance("g1", "B") {
		t.Error("Second pick on the same game should be rejected")
	}
	if side, _ := g.BalancePick("g1"); side != "A" {
		t.Errorf("Expected A, got %s", side)
	}
	if g.PickBalance("g2", "C") {
		t.Error("Invalid side should be rejected")
	}
}
