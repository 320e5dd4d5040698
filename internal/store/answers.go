package store

import (
	"sort"
	"sync"

	"dadam/internal/api"
)

// AnswerStore holds one browser session's view of today's answer thread.
// The backend list endpoint is the source of truth; everything here is a
// cache between refreshes, plus the optimistic bits (comment-count deltas,
// local like toggles) the UI shows before the next refresh lands.
type AnswerStore struct {
	mu      sync.Mutex
	answers []api.Answer

	// mutations counts completed writes; a refresh started before the
	// latest write carries a stale token and its result is discarded.
	mutations uint64

	inflight map[string]struct{}
	liked    map[int64]bool
}

func NewAnswerStore() *AnswerStore {
	return &AnswerStore{
		inflight: make(map[string]struct{}),
		liked:    make(map[int64]bool),
	}
}

// BeginRefresh snapshots the mutation counter. Pass the token to Replace
// so a slow fetch cannot overwrite state mutated after it started.
func (s *AnswerStore) BeginRefresh() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mutations
}

// MarkMutated records a completed write, invalidating refreshes already
// in flight.
func (s *AnswerStore) MarkMutated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mutations++
}

// Replace swaps in a freshly fetched list. Returns false (and keeps the
// current state) when the token predates a mutation.
func (s *AnswerStore) Replace(token uint64, answers []api.Answer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.mutations {
		return false
	}
	s.answers = make([]api.Answer, len(answers))
	copy(s.answers, answers)
	sort.SliceStable(s.answers, func(i, j int) bool {
		return s.answers[i].CreatedAt.Before(s.answers[j].CreatedAt)
	})
	return true
}

// List returns the cached answers, oldest first.
func (s *AnswerStore) List() []api.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Answer, len(s.answers))
	copy(out, s.answers)
	return out
}

func (s *AnswerStore) FindByID(id int64) (api.Answer, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.answers {
		if a.ID == id {
			return a, true
		}
	}
	return api.Answer{}, false
}

// ApplyPatch rewrites one answer's content in place after an edit the
// backend accepted.
func (s *AnswerStore) ApplyPatch(id int64, content string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.answers {
		if s.answers[i].ID == id {
			s.answers[i].Content = content
			return true
		}
	}
	return false
}

func (s *AnswerStore) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.answers {
		if s.answers[i].ID == id {
			s.answers = append(s.answers[:i], s.answers[i+1:]...)
			delete(s.liked, id)
			return true
		}
	}
	return false
}

// AdjustCommentCount shifts an answer's advisory comment count, clamped
// at zero. The next list refresh replaces it with the real figure.
func (s *AnswerStore) AdjustCommentCount(id int64, delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.answers {
		if s.answers[i].ID == id {
			n := s.answers[i].CommentCount + delta
			if n < 0 {
				n = 0
			}
			s.answers[i].CommentCount = n
			return
		}
	}
}

// TryAcquire claims an in-flight key for a mutation (e.g. "comment:12").
// A second click while the first request is still out gets false and
// must be ignored.
func (s *AnswerStore) TryAcquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, busy := s.inflight[key]; busy {
		return false
	}
	s.inflight[key] = struct{}{}
	return true
}

func (s *AnswerStore) Release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inflight, key)
}

// ToggleLike flips the session-local like on an answer and returns the
// new state with the adjusted count. Likes never reach the backend.
func (s *AnswerStore) ToggleLike(id int64) (liked bool, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.answers {
		if s.answers[i].ID != id {
			continue
		}
		if s.liked[id] {
			delete(s.liked, id)
			if s.answers[i].LikeCount > 0 {
				s.answers[i].LikeCount--
			}
		} else {
			s.liked[id] = true
			s.answers[i].LikeCount++
		}
		return s.liked[id], s.answers[i].LikeCount
	}
	return false, 0
}

func (s *AnswerStore) Liked(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[id]
}

// Reset drops everything, e.g. when the day rolls over to a new question
// or the user logs out.
func (s *AnswerStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.answers = nil
	s.mutations = 0
	s.inflight = make(map[string]struct{})
	s.liked = make(map[int64]bool)
}
