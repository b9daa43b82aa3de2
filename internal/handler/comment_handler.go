package handler

import (
	"errors"
	"net/http"
	"strconv"

	"Blogicum/internal/middleware"
	"Blogicum/internal/pkg"
	"Blogicum/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	svc *service.CommentService
}

func NewCommentHandler() *CommentHandler {
	return &CommentHandler{
		svc: service.NewCommentService(),
	}
}

func commentIDParam(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return id, true
}

// Add POST /posts/:id/comment。路由只注册 POST，GET 天然被拒
func (h *CommentHandler) Add(c *gin.Context) {
	postID, ok := postIDParam(c)
	if !ok {
		notFound(c)
		return
	}

	text := c.PostForm("text")
	if _, err := h.svc.Add(middleware.UserID(c), postID, text); err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			notFound(c)
			return
		}
		// 表单无效不报错，和正常提交一样回到详情页
		if !errors.Is(err, service.ErrCommentEmpty) {
			pkg.Logger.Errorw("add comment failed", "post", postID, "err", err)
		}
	}
	c.Redirect(http.StatusFound, detailURL(postID))
}

// EditForm GET /posts/:id/edit_comment/:comment_id
func (h *CommentHandler) EditForm(c *gin.Context) {
	postID, okP := postIDParam(c)
	commentID, okC := commentIDParam(c)
	if !okP || !okC {
		notFound(c)
		return
	}

	comment, err := h.svc.GetOwned(middleware.UserID(c), postID, commentID)
	if err != nil {
		h.ownershipFail(c, postID, err)
		return
	}
	render(c, http.StatusOK, "comment.html", gin.H{
		"Comment":  comment,
		"PostID":   postID,
		"IsDelete": false,
	})
}

// Edit POST /posts/:id/edit_comment/:comment_id
func (h *CommentHandler) Edit(c *gin.Context) {
	postID, okP := postIDParam(c)
	commentID, okC := commentIDParam(c)
	if !okP || !okC {
		notFound(c)
		return
	}

	text := c.PostForm("text")
	if err := h.svc.Update(middleware.UserID(c), postID, commentID, text); err != nil {
		if errors.Is(err, service.ErrCommentEmpty) {
			comment, _ := h.svc.GetOwned(middleware.UserID(c), postID, commentID)
			render(c, http.StatusOK, "comment.html", gin.H{
				"Comment":  comment,
				"PostID":   postID,
				"IsDelete": false,
				"Error":    "comment text required",
			})
			return
		}
		h.ownershipFail(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, detailURL(postID))
}

// DeleteForm GET /posts/:id/delete_comment/:comment_id 删除确认页
func (h *CommentHandler) DeleteForm(c *gin.Context) {
	postID, okP := postIDParam(c)
	commentID, okC := commentIDParam(c)
	if !okP || !okC {
		notFound(c)
		return
	}

	comment, err := h.svc.GetOwned(middleware.UserID(c), postID, commentID)
	if err != nil {
		h.ownershipFail(c, postID, err)
		return
	}
	render(c, http.StatusOK, "comment.html", gin.H{
		"Comment":  comment,
		"PostID":   postID,
		"IsDelete": true,
	})
}

// Delete POST /posts/:id/delete_comment/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	postID, okP := postIDParam(c)
	commentID, okC := commentIDParam(c)
	if !okP || !okC {
		notFound(c)
		return
	}

	if err := h.svc.Delete(middleware.UserID(c), postID, commentID); err != nil {
		h.ownershipFail(c, postID, err)
		return
	}
	c.Redirect(http.StatusFound, detailURL(postID))
}

// ownershipFail 非作者静默跳回详情页，评论不存在渲染 404
func (h *CommentHandler) ownershipFail(c *gin.Context, postID uint64, err error) {
	switch {
	case errors.Is(err, service.ErrNotAuthor):
		c.Redirect(http.StatusFound, detailURL(postID))
	case errors.Is(err, service.ErrCommentNotFound), errors.Is(err, service.ErrPostNotFound):
		notFound(c)
	default:
		pkg.Logger.Errorw("comment mutation failed", "post", postID, "err", err)
		c.String(http.StatusInternalServerError, "internal error")
	}
}
