package handlers

import (
	"net/http"

	"dadam/internal/middleware"
	"dadam/internal/services"
	"dadam/internal/store"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		auth: services.GetAuthService(),
	}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	sess, err := h.auth.Login(middleware.RequestContext(c), email, password)
	if err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": err.Error(), "Email": email})
		return
	}

	if err := middleware.SaveLogin(c, sess); err != nil {
		Render(c, http.StatusInternalServerError, "auth/login.html", gin.H{"Error": "로그인 처리에 실패했어요. 다시 시도해주세요"})
		return
	}

	middleware.State(c).Notices.Add(store.NoticeTypeSystem, sess.User.Name+"님, 다시 만나서 반가워요!")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	// 초대 링크로 들어오면 코드를 미리 채워준다
	Render(c, http.StatusOK, "auth/signup.html", gin.H{"FamilyCode": c.Query("code")})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")
	familyRole := c.PostForm("family_role")
	familyCode := c.PostForm("family_code")

	sess, err := h.auth.Signup(middleware.RequestContext(c), name, email, password, familyRole, familyCode)
	if err != nil {
		Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{
			"Error":      err.Error(),
			"Name":       name,
			"Email":      email,
			"FamilyCode": familyCode,
		})
		return
	}

	if err := middleware.SaveLogin(c, sess); err != nil {
		Render(c, http.StatusOK, "auth/login.html", gin.H{"Success": "가입 완료! 로그인해주세요"})
		return
	}

	middleware.State(c).Notices.Add(store.NoticeTypeSystem, "다담에 오신 걸 환영해요!")
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearLogin(c)
	c.Redirect(http.StatusFound, "/login")
}
