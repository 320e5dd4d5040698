package handlers

import (
	"errors"
	"net/http"

	"dadam/internal/api"
	"dadam/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Render helper to inject common variables like 'current user'
func Render(c *gin.Context, code int, name string, obj gin.H) {
	if obj == nil {
		obj = gin.H{}
	}

	if user, exists := c.Get(middleware.CheckUserKey); exists {
		obj["CurrentUser"] = user
		if count, ok := c.Get(middleware.UnreadCountKey); ok {
			obj["UnreadCount"] = count.(int)
		} else {
			obj["UnreadCount"] = 0
		}
	}

	obj["CurrentPath"] = c.Request.URL.Path

	c.HTML(code, name, obj)
}

// Error helper
func RenderError(c *gin.Context, code int, message string) {
	Render(c, code, "error.html", gin.H{"Error": message})
}

// handleAPIError 백엔드 에러 공통 처리. 401 이면 세션을 비우고
// 로그인으로 보낸다. 처리했으면 true.
func handleAPIError(c *gin.Context, err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, api.ErrUnauthorized) {
		middleware.ClearLogin(c)
		c.Redirect(http.StatusFound, "/login")
		c.Abort()
		return true
	}
	return false
}
