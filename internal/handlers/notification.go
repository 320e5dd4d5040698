package handlers

import (
	"net/http"

	"dadam/internal/middleware"
	"dadam/internal/utils"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct{}

func NewNotificationHandler() *NotificationHandler {
	return &NotificationHandler{}
}

func (h *NotificationHandler) List(c *gin.Context) {
	feed := middleware.State(c).Notices
	Render(c, http.StatusOK, "notification/list.html", gin.H{
		"Title":         "알림",
		"Notifications": feed.List(),
	})
}

func (h *NotificationHandler) Read(c *gin.Context) {
	feed := middleware.State(c).Notices
	if !feed.MarkRead(utils.StringToInt64(c.Param("id"))) {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusOK)
}

func (h *NotificationHandler) ReadAll(c *gin.Context) {
	middleware.State(c).Notices.ReadAll()
	c.Redirect(http.StatusFound, "/notifications")
}
