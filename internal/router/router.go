package router

import (
	"Blogicum/internal/handler"
	"Blogicum/internal/middleware"
	"Blogicum/internal/pkg"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(emailCfg pkg.SMTPConfig, templateGlob string) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob(templateGlob)

	emailSvc := service.NewEmailService(emailCfg)
	user := handler.NewUserHandler(emailSvc)
	post := handler.NewPostHandler()
	category := handler.NewCategoryHandler()
	comment := handler.NewCommentHandler()

	// 公开页面：能识别登录态就注入，识别不了按匿名继续
	public := r.Group("/")
	public.Use(middleware.CurrentUserMiddleware())
	{
		public.GET("/", post.Index)
		public.GET("/posts/:id", post.Detail)
		public.GET("/category/:slug", category.Posts)
		public.GET("/profile/:username", user.Profile)
	}

	// 注册 / 登录 / 找回密码
	authGroup := r.Group("/auth")
	{
		authGroup.GET("/registration", user.RegistrationForm)
		authGroup.POST("/registration", user.Register)
		authGroup.GET("/login", user.LoginForm)
		authGroup.POST("/login", user.Login)
		authGroup.GET("/logout", middleware.CurrentUserMiddleware(), user.Logout)
		authGroup.GET("/password_reset", user.PasswordResetForm)
		authGroup.POST("/password_reset", user.PasswordReset)
	}

	// 登录态接口
	loggedIn := r.Group("/")
	loggedIn.Use(middleware.AuthMiddleware())
	{
		loggedIn.GET("/posts/create", post.CreateForm)
		loggedIn.POST("/posts/create", post.Create)
		loggedIn.GET("/posts/:id/edit", post.EditForm)
		loggedIn.POST("/posts/:id/edit", post.Edit)
		loggedIn.GET("/posts/:id/delete", post.DeleteForm)
		loggedIn.POST("/posts/:id/delete", post.Delete)

		// 评论只注册 POST，GET 提交天然被拒
		loggedIn.POST("/posts/:id/comment", comment.Add)
		loggedIn.GET("/posts/:id/edit_comment/:comment_id", comment.EditForm)
		loggedIn.POST("/posts/:id/edit_comment/:comment_id", comment.Edit)
		loggedIn.GET("/posts/:id/delete_comment/:comment_id", comment.DeleteForm)
		loggedIn.POST("/posts/:id/delete_comment/:comment_id", comment.Delete)

		loggedIn.GET("/profile/edit", user.EditProfileForm)
		loggedIn.POST("/profile/edit", user.EditProfile)
		loggedIn.POST("/auth/change_password", user.ChangePassword)
	}

	return r
}
