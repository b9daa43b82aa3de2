package mysql

import (
	"Blogicum/internal/model"

	"gorm.io/gorm"
)

type CommentRepository struct {
	DB *gorm.DB
}

// ListByPost 帖子下全部评论，按时间正序
func (r *CommentRepository) ListByPost(postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.
		Where("post_id = ?", postID).
		Preload("Author").
		Order("created_at ASC, id ASC").
		Find(&list).Error
	return list, err
}

// FindByID 评论必须属于给定帖子，跨帖子的 id 视为不存在
func (r *CommentRepository) FindByID(id, postID uint64) (*model.Comment, error) {
	var comment model.Comment
	err := r.DB.Where("id = ? AND post_id = ?", id, postID).First(&comment).Error
	return &comment, err
}

// Create 建评论，同事务写 outbox
func (r *CommentRepository) Create(comment *model.Comment) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return insertOutbox(tx, EventCommentAdded, comment.AuthorID, comment.PostID)
	})
}

func (r *CommentRepository) Update(comment *model.Comment) error {
	return r.DB.Model(comment).Update("text", comment.Text).Error
}

func (r *CommentRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Comment{}, id).Error
}
