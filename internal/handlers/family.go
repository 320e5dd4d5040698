package handlers

import (
	"net/http"

	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type FamilyHandler struct {
	family *services.FamilyService
}

func NewFamilyHandler() *FamilyHandler {
	return &FamilyHandler{
		family: services.GetFamilyService(),
	}
}

// List 가족 목록
func (h *FamilyHandler) List(c *gin.Context) {
	ctx := middleware.RequestContext(c)
	me, _ := middleware.CurrentUser(c)

	members, err := h.family.Members(ctx, *me)
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, "가족 목록을 불러오지 못했어요")
		return
	}

	Render(c, http.StatusOK, "family/list.html", gin.H{
		"Title":      "우리 가족",
		"Members":    views.BuildFamilyList(members, *me),
		"FamilyCode": me.FamilyCode,
	})
}

// IssueCode 초대 코드 발급
func (h *FamilyHandler) IssueCode(c *gin.Context) {
	ctx := middleware.RequestContext(c)

	code, err := h.family.IssueInviteCode(ctx)
	if handleAPIError(c, err) {
		return
	}
	if err != nil {
		RenderError(c, http.StatusBadGateway, err.Error())
		return
	}

	middleware.State(c).Notices.Add(store.NoticeTypeSystem, "초대 코드가 발급됐어요: "+code)
	Render(c, http.StatusOK, "family/invite.html", gin.H{
		"Title":      "가족 초대",
		"FamilyCode": code,
	})
}
