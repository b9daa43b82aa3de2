package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"Blogicum/internal/middleware"
	"Blogicum/internal/pkg"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{
		svc: service.NewPostService(),
	}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		return 1
	}
	return page
}

func postIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Index 首页：公开可见的帖子列表
func (h *PostHandler) Index(c *gin.Context) {
	posts, pagination, err := h.svc.Index(pageParam(c))
	if err != nil {
		pkg.Logger.Errorw("index list failed", "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "index.html", gin.H{
		"Posts":      posts,
		"Pagination": pagination,
	})
}

// Detail 详情页：公开可见，或作者本人
func (h *PostHandler) Detail(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}

	post, comments, err := h.svc.Detail(postID, middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			notFound(c)
			return
		}
		pkg.Logger.Errorw("post detail failed", "post", postID, "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	render(c, http.StatusOK, "detail.html", gin.H{
		"Post":     post,
		"Comments": comments,
	})
}

// bindPostForm 建帖/编辑共用的表单解析
func (h *PostHandler) bindPostForm(c *gin.Context) (service.PostInput, error) {
	var in service.PostInput
	in.Title = c.PostForm("title")
	in.Text = c.PostForm("text")
	in.IsPublished = c.PostForm("is_published") != ""

	categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 64)
	if err != nil || categoryID == 0 {
		return in, errors.New("category required")
	}
	in.CategoryID = categoryID

	if raw := c.PostForm("location_id"); raw != "" {
		locationID, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return in, errors.New("invalid location")
		}
		in.LocationID = &locationID
	}

	// datetime-local 无时区，按服务器本地时间解释
	if raw := c.PostForm("pub_date"); raw != "" {
		t, err := time.ParseInLocation("2006-01-02T15:04", raw, time.Local)
		if err != nil {
			return in, errors.New("invalid pub date")
		}
		in.PubDate = t
	}
	return in, nil
}

func (h *PostHandler) renderForm(c *gin.Context, data gin.H) {
	categories, locations, err := h.svc.FormChoices()
	if err != nil {
		pkg.Logger.Errorw("form choices failed", "err", err)
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	data["Categories"] = categories
	data["Locations"] = locations
	render(c, http.StatusOK, "post_form.html", data)
}

// CreateForm GET /posts/create
func (h *PostHandler) CreateForm(c *gin.Context) {
	h.renderForm(c, gin.H{})
}

// Create POST /posts/create，成功后回到自己的主页
func (h *PostHandler) Create(c *gin.Context) {
	in, err := h.bindPostForm(c)
	if err == nil {
		_, err = h.svc.Create(middleware.UserID(c), in)
	}
	if err != nil {
		// 表单有错就带着错误重新渲染
		h.renderForm(c, gin.H{"Error": err.Error(), "Input": in})
		return
	}

	c.Redirect(http.StatusFound, profileURL(middleware.Username(c)))
}

// EditForm GET /posts/:id/edit。非作者静默跳回详情页
func (h *PostHandler) EditForm(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}

	post, err := h.svc.GetOwned(middleware.UserID(c), postID)
	if err != nil {
		h.ownershipFail(c, postID, err)
		return
	}
	h.renderForm(c, gin.H{"Post": post})
}

// Edit POST /posts/:id/edit
func (h *PostHandler) Edit(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}

	// 先做归属检查，非作者连表单错误都看不到，直接静默跳回详情
	if _, err := h.svc.GetOwned(middleware.UserID(c), postID); err != nil {
		h.ownershipFail(c, postID, err)
		return
	}

	in, err := h.bindPostForm(c)
	if err == nil {
		_, err = h.svc.Update(middleware.UserID(c), postID, in)
	}
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthor), errors.Is(err, service.ErrPostNotFound):
			h.ownershipFail(c, postID, err)
		default:
			// 表单有错就带着错误重新渲染
			h.renderForm(c, gin.H{"Error": err.Error(), "Input": in})
		}
		return
	}
	c.Redirect(http.StatusFound, detailURL(postID))
}

// DeleteForm GET /posts/:id/delete 删除确认页
func (h *PostHandler) DeleteForm(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}

	post, err := h.svc.GetOwned(middleware.UserID(c), postID)
	if err != nil {
		h.ownershipFail(c, postID, err)
		return
	}
	render(c, http.StatusOK, "post_confirm_delete.html", gin.H{"Post": post})
}

// Delete POST /posts/:id/delete，成功后回到自己的主页
func (h *PostHandler) Delete(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}

	if err := h.svc.Delete(middleware.UserID(c), postID); err != nil {
		h.ownershipFail(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(middleware.Username(c)))
}

// ownershipFail 归属检查失败的统一出口：非作者跳详情，不存在渲染 404
func (h *PostHandler) ownershipFail(c *gin.Context, postID uint64, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthor):
		c.Redirect(http.StatusFound, detailURL(postID))
	case errors.Is(err, service.ErrPostNotFound):
		notFound(c)
	default:
		pkg.Logger.Errorw("post mutation failed", "post", postID, "err", err)
		c.String(http.StatusInternalServerError, "internal error")
	}
}
