package handler

import (
	"errors"
	"net/http"

	"Blogicum/internal/middleware"
	"Blogicum/internal/pkg"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc     *service.UserService
	postSvc *service.PostService
}

func NewUserHandler(emailSvc *service.EmailService) *UserHandler {
	return &UserHandler{
		svc:     service.NewUserService(emailSvc),
		postSvc: service.NewPostService(),
	}
}

// RegistrationForm GET /auth/registration
func (h *UserHandler) RegistrationForm(c *gin.Context) {
	render(c, http.StatusOK, "registration.html", gin.H{})
}

// Register POST /auth/registration。成功跳登录页，失败带错误重新渲染表单
func (h *UserHandler) Register(c *gin.Context) {
	username := c.PostForm("username")
	email := c.PostForm("email")
	password := c.PostForm("password1")
	passwordConfirm := c.PostForm("password2")

	if username == "" || email == "" || password == "" {
		render(c, http.StatusOK, "registration.html", gin.H{
			"Error":    "all fields are required",
			"Username": username,
			"Email":    email,
		})
		return
	}

	if err := h.svc.Register(username, email, password, passwordConfirm); err != nil {
		render(c, http.StatusOK, "registration.html", gin.H{
			"Error":    err.Error(),
			"Username": username,
			"Email":    email,
		})
		return
	}

	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// LoginForm GET /auth/login
func (h *UserHandler) LoginForm(c *gin.Context) {
	render(c, http.StatusOK, "login.html", gin.H{})
}

// Login POST /auth/login。签发 token 写 cookie，回首页
func (h *UserHandler) Login(c *gin.Context) {
	login := c.PostForm("username")
	password := c.PostForm("password")

	token, err := h.svc.Login(login, password)
	if err != nil {
		render(c, http.StatusOK, "login.html", gin.H{
			"Error":    "invalid username or password",
			"Username": login,
		})
		return
	}

	middleware.SetAuthCookies(c, token)
	c.Redirect(http.StatusFound, "/")
}

// Logout GET /auth/logout
func (h *UserHandler) Logout(c *gin.Context) {
	if userID := middleware.UserID(c); userID != 0 {
		if err := h.svc.Logout(userID); err != nil {
			pkg.Logger.Errorw("logout failed", "user", userID, "err", err)
		}
	}
	middleware.ClearAuthCookies(c)
	c.Redirect(http.StatusFound, "/")
}

// Profile GET /profile/:username。本人看全部帖子，其他人只看公开可见
func (h *UserHandler) Profile(c *gin.Context) {
	username := c.Param("username")

	author, err := h.svc.FindByUsername(username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			notFound(c)
			return
		}
		pkg.Logger.Errorw("profile lookup failed", "username", username, "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	posts, pagination, err := h.postSvc.ProfilePosts(author.ID, middleware.UserID(c), pageParam(c))
	if err != nil {
		pkg.Logger.Errorw("profile list failed", "username", username, "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "profile.html", gin.H{
		"Profile":    author,
		"Posts":      posts,
		"Pagination": pagination,
		"IsOwner":    middleware.UserID(c) == author.ID,
	})
}

// EditProfileForm GET /profile/edit
func (h *UserHandler) EditProfileForm(c *gin.Context) {
	user, err := h.svc.FindByID(middleware.UserID(c))
	if err != nil {
		notFound(c)
		return
	}
	render(c, http.StatusOK, "edit_profile.html", gin.H{"Profile": user})
}

// EditProfile POST /profile/edit，成功后回到自己的主页
func (h *UserHandler) EditProfile(c *gin.Context) {
	user, err := h.svc.UpdateProfile(
		middleware.UserID(c),
		c.PostForm("first_name"),
		c.PostForm("last_name"),
		c.PostForm("email"),
	)
	if err != nil {
		render(c, http.StatusOK, "edit_profile.html", gin.H{"Error": err.Error()})
		return
	}
	c.Redirect(http.StatusFound, profileURL(user.Username))
}

// PasswordResetForm GET /auth/password_reset
func (h *UserHandler) PasswordResetForm(c *gin.Context) {
	render(c, http.StatusOK, "password_reset.html", gin.H{})
}

// PasswordReset POST /auth/password_reset。
// 只填邮箱是第一步（发验证码），带验证码和新密码是第二步（重置）
func (h *UserHandler) PasswordReset(c *gin.Context) {
	email := c.PostForm("email")
	code := c.PostForm("code")
	newPassword := c.PostForm("new_password")

	if code == "" {
		if err := h.svc.RequestPasswordReset(email); err != nil {
			render(c, http.StatusOK, "password_reset.html", gin.H{"Error": err.Error(), "Email": email})
			return
		}
		render(c, http.StatusOK, "password_reset.html", gin.H{"CodeSent": true, "Email": email})
		return
	}

	if err := h.svc.ResetPassword(email, code, newPassword); err != nil {
		render(c, http.StatusOK, "password_reset.html", gin.H{"Error": err.Error(), "Email": email, "CodeSent": true})
		return
	}
	c.Redirect(http.StatusFound, middleware.LoginPath)
}

// ChangePassword POST /auth/change_password，成功后强制重新登录
func (h *UserHandler) ChangePassword(c *gin.Context) {
	err := h.svc.ChangePassword(
		middleware.UserID(c),
		c.PostForm("old_password"),
		c.PostForm("new_password"),
	)
	if err != nil {
		render(c, http.StatusOK, "edit_profile.html", gin.H{"Error": err.Error()})
		return
	}
	middleware.ClearAuthCookies(c)
	c.Redirect(http.StatusFound, middleware.LoginPath)
}
