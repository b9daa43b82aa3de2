package handler

import (
	"net/http"

	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	svc  *service.PostService
	repo *mysql.CategoryRepository
}

func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{
		svc:  service.NewPostService(),
		repo: &mysql.CategoryRepository{DB: mysql.DB},
	}
}

// Posts GET /category/:slug 分类下公开可见的帖子。
// 未发布的分类对外不存在，直接 404
func (h *CategoryHandler) Posts(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.repo.FindPublishedBySlug(slug)
	if err != nil {
		notFound(c)
		return
	}

	posts, pagination, err := h.svc.CategoryPosts(category.ID, pageParam(c))
	if err != nil {
		pkg.Logger.Errorw("category list failed", "slug", slug, "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "category.html", gin.H{
		"Category":   category,
		"Posts":      posts,
		"Pagination": pagination,
	})
}
