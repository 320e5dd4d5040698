package views

import (
	"fmt"
	"html/template"
	"time"
	"unicode/utf8"

	"dadam/internal/api"
	"dadam/internal/utils"
)

const previewRunes = 70

// EmptyListMessage 답변이 하나도 없을 때 고정 문구
const EmptyListMessage = "아직 올라온 답변이 없어요. 첫 번째 답변을 남겨보세요!"

// AnswerItem 목록 카드 한 장. Content 는 수정 폼에 원문을 채울 때 쓴다.
type AnswerItem struct {
	ID           int64
	UserName     string
	AvatarLabel  string
	Content      string
	Preview      string
	TimeLabel    string
	LikeCount    int
	Liked        bool
	CommentCount int
	IsMine       bool
}

// AnswerListView 오늘의 답변 목록 화면
type AnswerListView struct {
	Items        []AnswerItem
	EmptyMessage string
	Participants int
	FamilyTotal  int
	Pill         string
	MyAnswerID   int64
	HasAnswered  bool
}

// Preview 본문 앞 70자, 넘치면 말줄임표
func Preview(content string) string {
	if utf8.RuneCountInString(content) <= previewRunes {
		return content
	}
	runes := []rune(content)
	return string(runes[:previewRunes]) + "..."
}

// TimeLabel 오늘 글은 "오늘 · HH:MM", 지난 글은 날짜를 보여준다
func TimeLabel(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	now := time.Now()
	if t.Year() == now.Year() && t.YearDay() == now.YearDay() {
		return "오늘 · " + t.Format("15:04")
	}
	return fmt.Sprintf("%d월 %d일 · %s", int(t.Month()), t.Day(), t.Format("15:04"))
}

// isMine 소유 판정. ID 가 있으면 ID 로만 보고, 양쪽 다 ID 가 없을 때만
// 이름으로 비교한다. 애매하면 남의 글로 취급한다.
func isMine(a api.Answer, me api.User) bool {
	if me.ID != 0 && a.UserID != 0 {
		return me.ID == a.UserID
	}
	if me.ID == 0 && a.UserID == 0 && me.Name != "" && a.UserName != "" {
		return me.Name == a.UserName
	}
	return false
}

func buildItem(a api.Answer, me api.User, liked func(int64) bool) AnswerItem {
	item := AnswerItem{
		ID:           a.ID,
		UserName:     a.UserName,
		AvatarLabel:  utils.AvatarLabel(a.UserName),
		Content:      a.Content,
		Preview:      Preview(a.Content),
		TimeLabel:    TimeLabel(a.CreatedAt),
		LikeCount:    a.LikeCount,
		CommentCount: a.CommentCount,
		IsMine:       isMine(a, me),
	}
	if liked != nil {
		item.Liked = liked(a.ID)
	}
	return item
}

// BuildAnswerList 목록 화면 모델. familyTotal 이 0 이면 참여 인원으로
// 대신하고, 그래도 0 이면 1 로 깔아서 "0명 중" 이 안 나오게 한다.
func BuildAnswerList(answers []api.Answer, me api.User, liked func(int64) bool, familyTotal int) AnswerListView {
	view := AnswerListView{}

	seen := make(map[int64]bool)
	seenNames := make(map[string]bool)
	for _, a := range answers {
		item := buildItem(a, me, liked)
		view.Items = append(view.Items, item)

		if a.UserID != 0 {
			seen[a.UserID] = true
		} else if a.UserName != "" {
			seenNames[a.UserName] = true
		}
		// 한 사람이 여러 번 남긴 비정상 데이터에서는 첫 답변이 내 답변
		if item.IsMine && !view.HasAnswered {
			view.MyAnswerID = a.ID
			view.HasAnswered = true
		}
	}
	view.Participants = len(seen) + len(seenNames)

	view.FamilyTotal = familyTotal
	if view.FamilyTotal == 0 {
		view.FamilyTotal = view.Participants
	}
	if view.FamilyTotal == 0 {
		view.FamilyTotal = 1
	}
	view.Pill = fmt.Sprintf("%d명 중 %d명 참여", view.FamilyTotal, view.Participants)

	if len(view.Items) == 0 {
		view.EmptyMessage = EmptyListMessage
	}
	return view
}

// CommentItem 댓글 한 줄. Content 는 수정 폼에 원문을 채울 때 쓴다.
type CommentItem struct {
	ID          int64
	UserName    string
	AvatarLabel string
	Content     string
	ContentHTML template.HTML
	TimeLabel   string
	IsMine      bool
}

func buildCommentItem(cm api.Comment, me api.User) CommentItem {
	mine := false
	if me.ID != 0 && cm.UserID != 0 {
		mine = me.ID == cm.UserID
	}
	return CommentItem{
		ID:          cm.ID,
		UserName:    cm.UserName,
		AvatarLabel: utils.AvatarLabel(cm.UserName),
		Content:     cm.Content,
		ContentHTML: utils.RenderContent(cm.Content),
		TimeLabel:   TimeLabel(cm.CreatedAt),
		IsMine:      mine,
	}
}

// ThreadView 답변 상세 + 댓글 스레드
type ThreadView struct {
	Answer      AnswerItem
	ContentHTML template.HTML
	Comments    []CommentItem
	CanModify   bool
	AnswerMax   int
	CommentMax  int
}

// BuildThread 상세 화면 모델. 수정/삭제 버튼은 내 글일 때만 나온다.
func BuildThread(a api.Answer, comments []api.Comment, me api.User, liked func(int64) bool, answerMax, commentMax int) ThreadView {
	view := ThreadView{
		Answer:      buildItem(a, me, liked),
		ContentHTML: utils.RenderContent(a.Content),
		CanModify:   isMine(a, me),
		AnswerMax:   answerMax,
		CommentMax:  commentMax,
	}
	for _, cm := range comments {
		view.Comments = append(view.Comments, buildCommentItem(cm, me))
	}
	return view
}
