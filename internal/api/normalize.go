package api

// Backend field naming drifted across client versions (id vs questionId vs
// question_id, content vs text, ...). Every permissive read lives here, at
// the boundary; the rest of the app only sees the typed shapes in types.go.

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

type object = map[string]any

func decodeObject(raw json.RawMessage) object {
	var m object
	if err := json.Unmarshal(raw, &m); err != nil {
		return object{}
	}
	return m
}

func decodeList(raw json.RawMessage) []object {
	var list []object
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	// Some endpoints wrap the list in an envelope.
	m := decodeObject(raw)
	for _, key := range []string{"data", "items", "content", "results"} {
		if v, ok := m[key]; ok {
			return anyList(v)
		}
	}
	return nil
}

func anyList(v any) []object {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]object, 0, len(items))
	for _, item := range items {
		if m, ok := item.(object); ok {
			out = append(out, m)
		}
	}
	return out
}

func pickString(m object, keys ...string) string {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

func pickInt(m object, keys ...string) int64 {
	for _, k := range keys {
		switch v := m[k].(type) {
		case float64:
			return int64(v)
		case string:
			if n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64); err == nil {
				return n
			}
		}
	}
	return 0
}

func pickBool(m object, keys ...string) bool {
	for _, k := range keys {
		if v, ok := m[k].(bool); ok {
			return v
		}
	}
	return false
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func pickTime(m object, keys ...string) time.Time {
	for _, k := range keys {
		switch v := m[k].(type) {
		case string:
			for _, layout := range timeLayouts {
				if t, err := time.ParseInLocation(layout, v, time.Local); err == nil {
					return t
				}
			}
		case float64:
			// Epoch millis from the oldest clients.
			if v > 1e12 {
				return time.UnixMilli(int64(v))
			}
			if v > 0 {
				return time.Unix(int64(v), 0)
			}
		}
	}
	return time.Time{}
}

// DecodeQuestion reads a question payload; archive responses may embed the
// answer list directly, so both come back together.
func DecodeQuestion(raw json.RawMessage) (Question, []Answer) {
	m := decodeObject(raw)
	q := Question{
		ID:   pickInt(m, "id", "questionId", "questionID", "question_id"),
		Text: pickString(m, "content", "question", "text", "title", "questionText"),
	}
	var answers []Answer
	for _, key := range []string{"answers", "answerList"} {
		if v, ok := m[key]; ok {
			for _, am := range anyList(v) {
				answers = append(answers, decodeAnswer(am))
			}
			break
		}
	}
	return q, answers
}

func decodeAnswer(m object) Answer {
	return Answer{
		ID:           pickInt(m, "id", "answerId", "answer_id"),
		UserID:       pickInt(m, "userId", "user_id", "authorId"),
		UserName:     pickString(m, "userName", "user_name", "name", "author"),
		Content:      pickString(m, "content", "text"),
		CreatedAt:    pickTime(m, "createdAt", "created_at"),
		LikeCount:    int(pickInt(m, "likeCount", "like_count", "likes")),
		CommentCount: int(pickInt(m, "commentCount", "comment_count")),
	}
}

func DecodeAnswers(raw json.RawMessage) []Answer {
	items := decodeList(raw)
	answers := make([]Answer, 0, len(items))
	for _, m := range items {
		answers = append(answers, decodeAnswer(m))
	}
	return answers
}

func DecodeAnswer(raw json.RawMessage) Answer {
	return decodeAnswer(decodeObject(raw))
}

func decodeComment(m object) Comment {
	return Comment{
		ID:        pickInt(m, "commentId", "comment_id", "id"),
		UserID:    pickInt(m, "userId", "user_id"),
		UserName:  pickString(m, "userName", "user_name", "name"),
		Content:   pickString(m, "content", "text"),
		CreatedAt: pickTime(m, "createdAt", "created_at"),
	}
}

func DecodeComments(raw json.RawMessage) []Comment {
	items := decodeList(raw)
	comments := make([]Comment, 0, len(items))
	for _, m := range items {
		comments = append(comments, decodeComment(m))
	}
	return comments
}

func decodeUser(m object) User {
	return User{
		ID:         pickInt(m, "id", "userId", "user_id"),
		Name:       pickString(m, "name", "userName", "user_name"),
		Email:      pickString(m, "email"),
		FamilyRole: pickString(m, "familyRole", "family_role", "role"),
		FamilyCode: strings.TrimSpace(pickString(m, "familyCode", "family_code")),
		AvatarURL:  pickString(m, "avatarUrl", "avatar_url", "avatar"),
	}
}

// DecodeSession reads a login/signup response: { token, user: {...} }.
func DecodeSession(raw json.RawMessage) Session {
	m := decodeObject(raw)
	s := Session{
		Token: pickString(m, "token", "accessToken", "access_token", "jwt"),
	}
	if um, ok := m["user"].(object); ok {
		s.User = decodeUser(um)
	} else {
		// Flat responses carry the user fields on the top level.
		s.User = decodeUser(m)
	}
	return s
}

func DecodeFamilyMembers(raw json.RawMessage) []FamilyMember {
	items := decodeList(raw)
	members := make([]FamilyMember, 0, len(items))
	for _, m := range items {
		u := decodeUser(m)
		members = append(members, FamilyMember{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			FamilyRole: u.FamilyRole,
			FamilyCode: u.FamilyCode,
			AvatarURL:  u.AvatarURL,
		})
	}
	return members
}

// DecodeFamilyCode reads POST /users/me/family-code responses.
func DecodeFamilyCode(raw json.RawMessage) string {
	m := decodeObject(raw)
	return strings.TrimSpace(pickString(m, "familyCode", "family_code", "code"))
}

func decodeSchedule(m object) Schedule {
	return Schedule{
		ID:     pickInt(m, "id", "scheduleId", "schedule_id"),
		Title:  pickString(m, "title", "name"),
		Date:   pickString(m, "date"),
		Time:   pickString(m, "time"),
		Place:  pickString(m, "place", "location"),
		Memo:   pickString(m, "memo", "note"),
		Type:   pickString(m, "type", "scheduleType"),
		Remind: pickBool(m, "remind", "reminder"),
	}
}

func DecodeSchedules(raw json.RawMessage) []Schedule {
	items := decodeList(raw)
	schedules := make([]Schedule, 0, len(items))
	for _, m := range items {
		schedules = append(schedules, decodeSchedule(m))
	}
	return schedules
}

func DecodeSchedule(raw json.RawMessage) Schedule {
	return decodeSchedule(decodeObject(raw))
}

func DecodeBalanceGame(raw json.RawMessage) BalanceGame {
	m := decodeObject(raw)
	game := BalanceGame{
		ID:       pickString(m, "id", "gameId", "game_id"),
		Question: pickString(m, "question", "title", "content"),
		OptionA:  pickString(m, "optionA", "option_a", "A", "a"),
		OptionB:  pickString(m, "optionB", "option_b", "B", "b"),
	}
	if game.ID == "" {
		game.ID = game.Question
	}
	return game
}

func DecodeSlangQuiz(raw json.RawMessage) SlangQuiz {
	m := decodeObject(raw)
	quiz := SlangQuiz{
		ID:           pickString(m, "id", "quizId", "quiz_id"),
		Question:     pickString(m, "question", "title"),
		CorrectIndex: int(pickInt(m, "correctIndex", "correct_index", "answerIndex")),
		Explanation:  pickString(m, "explanation", "description"),
	}
	if v, ok := m["options"]; ok {
		if items, ok := v.([]any); ok {
			for _, item := range items {
				if s, ok := item.(string); ok {
					quiz.Options = append(quiz.Options, s)
				}
			}
		}
	}
	if quiz.ID == "" {
		quiz.ID = quiz.Question
	}
	return quiz
}
