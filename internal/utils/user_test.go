package utils

import (
	"strings"
	"testing"
)

func TestAvatarLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"김다함", "김"},
		{" 엄마 ", "엄"},
		{"Alex", "A"},
		{"", "?"},
		{"   ", "?"},
	}
	for _, tc := range cases {
		if got := AvatarLabel(tc.in); got != tc.want {
			t.Errorf("AvatarLabel(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestGenerateFamilyCode(t *testing.T) {
	code := GenerateFamilyCode(6)
	if len(code) != 6 {
		t.Fatalf("Expected 6 chars, got %d", len(code))
	}
	for _, r := range code {
		if r == '0' || r == 'O' || r == '1' || r == 'I' {
			t.Errorf("Code contains ambiguous char %q", r)
		}
	}

	if GenerateFamilyCode(6) == code && GenerateFamilyCode(6) == code {
		t.Error("Codes should not repeat")
	}
}

func TestRenderContent(t *testing.T) {
	out := string(RenderContent("**오늘** 즐거웠다"))
	if out == "" {
		t.Fatal("Empty render")
	}
	if want := "<strong>오늘</strong>"; !strings.Contains(out, want) {
		t.Errorf("Expected %q in %q", want, out)
	}

	out = string(RenderContent(`<script>alert(1)</script>안녕`))
	if strings.Contains(out, "<script>") {
		t.Error("Script tag survived sanitization")
	}
}
