package api

import (
	"time"
)

// Question 오늘의 질문 - partitions every answer operation
type Question struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
}

// Answer 가족 구성원이 남긴 답변
// LikeCount/CommentCount are advisory between list refreshes; the list
// endpoint is authoritative.
type Answer struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	UserName     string    `json:"user_name"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"created_at"`
	LikeCount    int       `json:"like_count"`
	CommentCount int       `json:"comment_count"`
}

// Comment 답변에 달린 댓글 - always scoped to exactly one answer
type Comment struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// User 로그인한 사용자
type User struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	FamilyRole string `json:"family_role"`
	FamilyCode string `json:"family_code"`
	AvatarURL  string `json:"avatar_url"`
}

// Session login/signup 응답
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// FamilyMember 가족 목록 항목
type FamilyMember struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	FamilyRole string `json:"family_role"`
	FamilyCode string `json:"family_code"`
	AvatarURL  string `json:"avatar_url"`
}

// Schedule 가족 약속 (캘린더 일정)
type Schedule struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	Date   string `json:"date"` // yyyy-mm-dd
	Time   string `json:"time"` // HH:MM, optional
	Place  string `json:"place"`
	Memo   string `json:"memo"`
	Type   string `json:"type"` // "dinner" or "trip"
	Remind bool   `json:"remind"`
}

// BalanceGame 밸런스 게임 한 판
type BalanceGame struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	OptionA  string `json:"option_a"`
	OptionB  string `json:"option_b"`
}

// SlangQuiz 신조어 객관식 퀴즈
type SlangQuiz struct {
	ID           string   `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	Explanation  string   `json:"explanation"`
}
