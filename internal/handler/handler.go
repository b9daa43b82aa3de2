package handler

import (
	"fmt"
	"net/http"

	"Blogicum/internal/middleware"

	"github.com/gin-gonic/gin"
)

// baseData 所有页面共用的模板数据
func baseData(c *gin.Context) gin.H {
	return gin.H{
		"Username":   middleware.Username(c),
		"IsLoggedIn": middleware.UserID(c) != 0,
	}
}

func render(c *gin.Context, status int, tmpl string, data gin.H) {
	base := baseData(c)
	for k, v := range data {
		base[k] = v
	}
	c.HTML(status, tmpl, base)
}

// notFound 未知或不可见的资源统一渲染 404 页
func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", gin.H{})
}

func detailURL(postID uint64) string {
	return fmt.Sprintf("/posts/%d", postID)
}

func profileURL(username string) string {
	return "/profile/" + username
}
