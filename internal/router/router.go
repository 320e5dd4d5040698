package router

import (
	"dadam/internal/handlers"
	"dadam/internal/legacy"
	"dadam/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRemote 원격 모드: DADAM_API_BASE 의 백엔드를 프록시한다
func RegisterRemote(r *gin.Engine) {
	r.Use(middleware.LoadUser())

	authHandler := handlers.NewAuthHandler()
	homeHandler := handlers.NewHomeHandler()
	answerHandler := handlers.NewAnswerHandler()
	familyHandler := handlers.NewFamilyHandler()
	archiveHandler := handlers.NewArchiveHandler()
	calendarHandler := handlers.NewCalendarHandler()
	gameHandler := handlers.NewGameHandler()
	notificationHandler := handlers.NewNotificationHandler()

	// 공개 라우트
	r.GET("/signup", authHandler.ShowSignup) // 가입 화면 (?code= 초대 코드)
	r.POST("/signup", authHandler.Signup)    // 가입 제출
	r.GET("/login", authHandler.ShowLogin)   // 로그인 화면
	r.POST("/login", authHandler.Login)      // 로그인 제출
	r.GET("/logout", authHandler.Logout)     // 로그아웃

	// 보호 라우트
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/", homeHandler.Index)              // 오늘의 질문 + 답변 목록
		authorized.POST("/answers", homeHandler.CreateAnswer) // 답변 등록

		authorized.GET("/answers/:aid", answerHandler.Detail)      // 답변 상세 + 댓글
		authorized.POST("/answers/:aid/edit", answerHandler.Update) // 답변 수정
		authorized.DELETE("/answers/:aid", answerHandler.Delete)   // 답변 삭제
		authorized.POST("/answers/:aid/like", answerHandler.ToggleLike) // 좋아요 토글

		authorized.POST("/answers/:aid/comments", answerHandler.CreateComment)           // 댓글 등록
		authorized.POST("/answers/:aid/comments/:cid/edit", answerHandler.UpdateComment) // 댓글 수정
		authorized.DELETE("/answers/:aid/comments/:cid", answerHandler.DeleteComment)    // 댓글 삭제

		authorized.GET("/family", familyHandler.List)         // 가족 목록
		authorized.POST("/family/invite", familyHandler.IssueCode) // 초대 코드 발급

		authorized.GET("/archive", archiveHandler.Show) // 지난 질문 (?date=)

		authorized.GET("/calendar", calendarHandler.Show)       // 월 달력 (?month=)
		authorized.GET("/calendar/day", calendarHandler.Day)    // 하루 일정 (?date=)
		authorized.POST("/calendar", calendarHandler.Create)    // 일정 등록
		authorized.DELETE("/calendar/:id", calendarHandler.Delete) // 일정 삭제

		authorized.GET("/games", gameHandler.Index)            // 게임 홈
		authorized.GET("/games/balance", gameHandler.Balance)  // 밸런스 게임
		authorized.POST("/games/balance", gameHandler.PickBalance)
		authorized.GET("/games/quiz", gameHandler.Quiz) // 신조어 퀴즈
		authorized.POST("/games/quiz", gameHandler.AnswerQuiz)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
	}
}

// RegisterLegacy 로컬 모드: 이 프로세스의 DB 가 저장소다
func RegisterLegacy(r *gin.Engine) {
	r.Use(legacy.LoadUser())

	authHandler := legacy.NewAuthHandler()
	answerHandler := legacy.NewAnswerHandler()
	familyHandler := legacy.NewFamilyHandler()
	archiveHandler := legacy.NewArchiveHandler()
	calendarHandler := legacy.NewCalendarHandler()
	gameHandler := legacy.NewGameHandler()
	notificationHandler := handlers.NewNotificationHandler()

	r.GET("/signup", authHandler.ShowSignup)
	r.POST("/signup", authHandler.Signup)
	r.GET("/login", authHandler.ShowLogin)
	r.POST("/login", authHandler.Login)
	r.GET("/logout", authHandler.Logout)

	authorized := r.Group("/")
	authorized.Use(legacy.AuthRequired())
	{
		authorized.GET("/", answerHandler.Index)
		authorized.POST("/answers", answerHandler.CreateAnswer)

		authorized.GET("/answers/:aid", answerHandler.Detail)
		authorized.POST("/answers/:aid/edit", answerHandler.Update)
		authorized.DELETE("/answers/:aid", answerHandler.Delete)
		authorized.POST("/answers/:aid/like", answerHandler.ToggleLike)

		authorized.POST("/answers/:aid/comments", answerHandler.CreateComment)
		authorized.POST("/answers/:aid/comments/:cid/edit", answerHandler.UpdateComment)
		authorized.DELETE("/answers/:aid/comments/:cid", answerHandler.DeleteComment)

		authorized.GET("/family", familyHandler.List)
		authorized.POST("/family/invite", familyHandler.IssueCode)

		authorized.GET("/archive", archiveHandler.Show)

		authorized.GET("/calendar", calendarHandler.Show)
		authorized.GET("/calendar/day", calendarHandler.Day)
		authorized.POST("/calendar", calendarHandler.Create)
		authorized.DELETE("/calendar/:id", calendarHandler.Delete)

		authorized.GET("/games", gameHandler.Index)
		authorized.GET("/games/balance", gameHandler.Balance)
		authorized.POST("/games/balance", gameHandler.PickBalance)
		authorized.GET("/games/quiz", gameHandler.Quiz)
		authorized.POST("/games/quiz", gameHandler.AnswerQuiz)

		authorized.GET("/notifications", notificationHandler.List)
		authorized.POST("/notifications/:id/read", notificationHandler.Read)
		authorized.POST("/notifications/read-all", notificationHandler.ReadAll)
	}
}
