package legacy

import (
	"net/http"
	"net/mail"
	"strings"

	"dadam/internal/handlers"
	"dadam/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	handlers.Render(c, http.StatusOK, "auth/login.html", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	var user User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		handlers.Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "이메일 또는 비밀번호가 맞지 않아요", "Email": email})
		return
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		handlers.Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{"Error": "이메일 또는 비밀번호가 맞지 않아요", "Email": email})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowSignup(c *gin.Context) {
	handlers.Render(c, http.StatusOK, "auth/signup.html", gin.H{"FamilyCode": c.Query("code")})
}

func (h *AuthHandler) Signup(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("name"))
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")
	familyRole := c.PostForm("family_role")
	familyCode := strings.TrimSpace(c.PostForm("family_code"))

	fail := func(msg string) {
		handlers.Render(c, http.StatusBadRequest, "auth/signup.html", gin.H{
			"Error": msg, "Name": name, "Email": email, "FamilyCode": familyCode,
		})
	}

	if name == "" {
		fail("이름을 입력해주세요")
		return
	}
	if _, err := mail.ParseAddress(email); err != nil {
		fail("이메일 형식을 확인해주세요")
		return
	}
	if len(password) < 6 {
		fail("비밀번호는 6자 이상이어야 해요")
		return
	}

	// 초대 코드가 있으면 그 가족에 합류, 없으면 새 가족을 만든다
	if familyCode != "" {
		var count int64
		DB.Model(&User{}).Where("family_code = ?", familyCode).Count(&count)
		if count == 0 {
			fail("초대 코드를 찾을 수 없어요")
			return
		}
	} else {
		familyCode = utils.GenerateFamilyCode(6)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		fail("가입 처리에 실패했어요. 다시 시도해주세요")
		return
	}

	user := User{
		Name:       name,
		Email:      email,
		Password:   hash,
		FamilyRole: familyRole,
		FamilyCode: familyCode,
	}
	if err := DB.Create(&user).Error; err != nil {
		fail("이미 가입된 이메일이에요")
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/login")
}
