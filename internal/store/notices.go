package store

import (
	"sync"
	"time"
)

type NoticeType string

const (
	NoticeTypeAnswer   NoticeType = "answer"
	NoticeTypeComment  NoticeType = "comment"
	NoticeTypeSchedule NoticeType = "schedule"
	NoticeTypeGame     NoticeType = "game"
	NoticeTypeSystem   NoticeType = "system"
)

type Notice struct {
	ID        int64
	Type      NoticeType
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

const noticeCap = 50

// NoticeFeed is the session's in-app notification list, newest first.
type NoticeFeed struct {
	mu      sync.Mutex
	nextID  int64
	notices []Notice
}

func NewNoticeFeed() *NoticeFeed {
	return &NoticeFeed{nextID: 1}
}

func (f *NoticeFeed) Add(typ NoticeType, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := Notice{
		ID:        f.nextID,
		Type:      typ,
		Message:   message,
		CreatedAt: time.Now(),
	}
	f.nextID++
	f.notices = append([]Notice{n}, f.notices...)
	if len(f.notices) > noticeCap {
		f.notices = f.notices[:noticeCap]
	}
}

// AddOnce 같은 종류의 같은 문구가 이미 있으면 다시 쌓지 않는다.
// 페이지를 열 때마다 도는 리마인더용.
func (f *NoticeFeed) AddOnce(typ NoticeType, message string) bool {
	f.mu.Lock()
	for _, n := range f.notices {
		if n.Type == typ && n.Message == message {
			f.mu.Unlock()
			return false
		}
	}
	f.mu.Unlock()
	f.Add(typ, message)
	return true
}

func (f *NoticeFeed) List() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notice, len(f.notices))
	copy(out, f.notices)
	return out
}

func (f *NoticeFeed) Unread() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for _, n := range f.notices {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (f *NoticeFeed) MarkRead(id int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notices {
		if f.notices[i].ID == id {
			f.notices[i].IsRead = true
			return true
		}
	}
	return false
}

func (f *NoticeFeed) ReadAll() {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.notices {
		f.notices[i].IsRead = true
	}
}
