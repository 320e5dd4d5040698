package views

import (
	"html/template"

	"dadam/internal/api"
	"dadam/internal/utils"
)

// ArchiveThread 지난 질문 화면의 답변 하나. 미리보기가 아니라 전문을
// 보여주고, 그날 달린 댓글도 같이 싣는다. 읽기 전용이라 수정 버튼은 없다.
type ArchiveThread struct {
	Answer      AnswerItem
	ContentHTML template.HTML
	Comments    []CommentItem
}

// BuildArchive 답변별 댓글을 묶어 지난 질문 화면 모델을 만든다.
func BuildArchive(answers []api.Answer, comments map[int64][]api.Comment, me api.User) []ArchiveThread {
	threads := make([]ArchiveThread, 0, len(answers))
	for _, a := range answers {
		thread := ArchiveThread{
			Answer:      buildItem(a, me, nil),
			ContentHTML: utils.RenderContent(a.Content),
		}
		for _, cm := range comments[a.ID] {
			thread.Comments = append(thread.Comments, buildCommentItem(cm, me))
		}
		threads = append(threads, thread)
	}
	return threads
}
