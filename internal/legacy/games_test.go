package legacy

import "testing"

func TestTallyBalance(t *testing.T) {
	names := map[int64]string{1: "아빠", 2: "엄마", 3: "딸"}
	rows := []GameSelection{
		{GameID: "b1", UserID: 1, Side: "A"},
		{GameID: "b1", UserID: 2, Side: "A"},
		{GameID: "b1", UserID: 3, Side: "B"},
	}

	result := tallyBalance(rows, names)
	if result.ACount != 2 || result.BCount != 1 {
		t.Fatalf("Expected 2:1, got %d:%d", result.ACount, result.BCount)
	}
	if result.APercent != 66 || result.BPercent != 34 {
		t.Errorf("Expected 66/34, got %d/%d", result.APercent, result.BPercent)
	}
	if len(result.APickers) != 2 || result.APickers[0].Name != "아빠" {
		t.Errorf("A side pickers wrong: %+v", result.APickers)
	}
	if len(result.BPickers) != 1 || result.BPickers[0].AvatarLabel != "딸" {
		t.Errorf("B side pickers wrong: %+v", result.BPickers)
	}
}

func TestTallyBalanceEmpty(t *testing.T) {
	result := tallyBalance(nil, nil)
	if result.APercent != 0 || result.BPercent != 0 {
		t.Errorf("No votes should give 0/0, got %d/%d", result.APercent, result.BPercent)
	}
}
