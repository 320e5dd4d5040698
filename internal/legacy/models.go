package legacy

import (
	"time"
)

// 로컬 모드 스키마. 원격 백엔드 없이 다담을 통째로 돌릴 때 쓴다.

type User struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:50;not null" json:"name"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"` // bcrypt hash
	FamilyRole string    `gorm:"size:20" json:"family_role"`
	FamilyCode string    `gorm:"size:12;index" json:"family_code"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Question struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:text;not null" json:"text"`
	AskedOn   string    `gorm:"size:10;index" json:"asked_on"` // yyyy-mm-dd, 배정된 날
	CreatedAt time.Time `json:"created_at"`
}

// Answer 한 질문에 한 사람당 하나
type Answer struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	QuestionID int64     `gorm:"not null;index;uniqueIndex:idx_question_user" json:"question_id"`
	Question   Question  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"question"`
	UserID     int64     `gorm:"not null;uniqueIndex:idx_question_user" json:"user_id"`
	User       User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	LikeCount  int       `gorm:"default:0" json:"like_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type Comment struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	AnswerID  int64     `gorm:"not null;index" json:"answer_id"`
	Answer    Answer    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"answer"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content   string    `gorm:"size:100;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// GameSelection 밸런스 게임 선택. 게임당 한 사람 하나, 다시 고르면 옮겨간다.
type GameSelection struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	GameID    string    `gorm:"size:20;not null;uniqueIndex:idx_game_user" json:"game_id"`
	UserID    int64     `gorm:"not null;uniqueIndex:idx_game_user" json:"user_id"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Side      string    `gorm:"size:1;not null" json:"side"` // "A" or "B"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Schedule struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index" json:"user_id"`
	Title     string    `gorm:"size:100;not null" json:"title"`
	Date      string    `gorm:"size:10;index;not null" json:"date"` // yyyy-mm-dd
	Time      string    `gorm:"size:5" json:"time"`
	Place     string    `gorm:"size:100" json:"place"`
	Memo      string    `gorm:"type:text" json:"memo"`
	Type      string    `gorm:"size:20" json:"type"`
	Remind    bool      `gorm:"default:false" json:"remind"`
	CreatedAt time.Time `json:"created_at"`
}
