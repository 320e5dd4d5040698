package legacy

import (
	"net/http"

	"dadam/internal/api"
	"dadam/internal/middleware"
	"dadam/internal/store"
	"dadam/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// 로컬 모드 미들웨어. 컨텍스트 키는 원격 모드와 같은 걸 써서
// views/Render 쪽 코드를 그대로 재사용한다.

func toAPIUser(u User) *api.User {
	return &api.User{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		FamilyRole: u.FamilyRole,
		FamilyCode: u.FamilyCode,
	}
}

// LoadUser retrieves user from session and sets to context
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)

		sid, _ := session.Get("sid").(string)
		if sid == "" {
			sid = utils.NewSessionID()
			session.Set("sid", sid)
			session.Save()
		}
		state := store.GetManager().Get(sid)
		c.Set(middleware.SessionStateKey, state)

		if userID, ok := session.Get("user_id").(int64); ok {
			var user User
			if err := DB.First(&user, userID).Error; err == nil {
				c.Set(middleware.CheckUserKey, toAPIUser(user))
				c.Set(middleware.UnreadCountKey, state.Notices.Unread())
			}
		}

		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(middleware.CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}
