package legacy

import (
	"net/http"

	"dadam/internal/api"
	"dadam/internal/handlers"
	"dadam/internal/middleware"
	"dadam/internal/utils"
	"dadam/internal/views"

	"github.com/gin-gonic/gin"
)

type FamilyHandler struct{}

func NewFamilyHandler() *FamilyHandler {
	return &FamilyHandler{}
}

// List 같은 가족 코드를 가진 구성원 목록
func (h *FamilyHandler) List(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)

	var rows []User
	DB.Where("family_code = ?", me.FamilyCode).Order("created_at ASC").Find(&rows)

	members := make([]api.FamilyMember, 0, len(rows))
	for _, u := range rows {
		members = append(members, api.FamilyMember{
			ID:         u.ID,
			Name:       u.Name,
			Email:      u.Email,
			FamilyRole: u.FamilyRole,
			FamilyCode: u.FamilyCode,
		})
	}

	handlers.Render(c, http.StatusOK, "family/list.html", gin.H{
		"Title":      "우리 가족",
		"Members":    views.BuildFamilyList(members, *me),
		"FamilyCode": me.FamilyCode,
	})
}

// IssueCode 내 가족 코드 보여주기. 없으면 새로 만들어 저장한다.
func (h *FamilyHandler) IssueCode(c *gin.Context) {
	me, _ := middleware.CurrentUser(c)

	code := me.FamilyCode
	if code == "" {
		code = utils.GenerateFamilyCode(6)
		DB.Model(&User{}).Where("id = ?", me.ID).Update("family_code", code)
	}

	handlers.Render(c, http.StatusOK, "family/invite.html", gin.H{
		"Title":      "가족 초대",
		"FamilyCode": code,
	})
}
