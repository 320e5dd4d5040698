package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"dadam/internal/api"
	"dadam/internal/store"
	"dadam/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	CheckUserKey    = "user"
	TokenKey        = "api_token"
	SessionStateKey = "session_state"
	UnreadCountKey  = "unread_count"
)

// 쿠키에는 토큰과 프로필 JSON, 그리고 프로세스 내 상태를 찾는 sid 만 둔다.
// 답변 캐시 같은 큰 상태는 store.Manager 쪽에 산다.

// LoadUser retrieves the session and sets user, token and state to context
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
		c.Set(SessionStateKey, state)

		token, _ := session.Get("token").(string)
		userJSON, _ := session.Get("user").(string)
		if token != "" && userJSON != "" {
			var user api.User
			if err := json.Unmarshal([]byte(userJSON), &user); err == nil {
				c.Set(CheckUserKey, &user)
				c.Set(TokenKey, token)
				c.Set(UnreadCountKey, state.Notices.Unread())
			}
		}

		c.Next()
	}
}

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser 컨텍스트의 로그인 사용자
func CurrentUser(c *gin.Context) (*api.User, bool) {
	v, exists := c.Get(CheckUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*api.User)
	return user, ok
}

// State 이 브라우저 세션의 프로세스 내 상태
func State(c *gin.Context) *store.Session {
	return c.MustGet(SessionStateKey).(*store.Session)
}

// RequestContext 백엔드 호출용 컨텍스트 (bearer 토큰 포함)
func RequestContext(c *gin.Context) context.Context {
	ctx := c.Request.Context()
	if token, ok := c.Get(TokenKey); ok {
		ctx = api.WithToken(ctx, token.(string))
	}
	return ctx
}

// SaveLogin 로그인 성공 후 쿠키 세션을 채운다
func SaveLogin(c *gin.Context, sess api.Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	session := sessions.Default(c)
	session.Set("token", sess.Token)
	session.Set("user", string(userJSON))
	return session.Save()
}

// ClearLogin 로그아웃 또는 401 을 받았을 때. sid 도 버려서
// 프로세스 내 상태까지 같이 정리한다.
func ClearLogin(c *gin.Context) {
	session := sessions.Default(c)
	if sid, _ := session.Get("sid").(string); sid != "" {
		store.GetManager().Drop(sid)
	}
	session.Clear()
	session.Save()
}
