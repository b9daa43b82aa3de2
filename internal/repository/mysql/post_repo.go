package mysql

import (
	"time"

	"Blogicum/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

// commentCountSelect 列表查询附带评论数，避免逐条 COUNT
const commentCountSelect = "posts.*, (SELECT COUNT(*) FROM comments WHERE comments.post_id = posts.id) AS comment_count"

// visiblePostCond 公开可见谓词：帖子已发布、所属分类已发布、发布时间不在未来
const visiblePostCond = "posts.is_published = ? AND categories.is_published = ? AND posts.pub_date <= ?"

// visibleQuery 每次返回新的查询链，Count 和 Find 不能复用同一条
func (r *PostRepository) visibleQuery(now time.Time) *gorm.DB {
	return r.DB.Model(&model.Post{}).
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where(visiblePostCond, true, true, now)
}

func (r *PostRepository) listQuery(q *gorm.DB, offset, limit int) *gorm.DB {
	return q.
		Select(commentCountSelect).
		Preload("Category").
		Preload("Location").
		Preload("Author").
		Order("posts.pub_date DESC").
		Offset(offset).
		Limit(limit)
}

// ListVisible 首页列表：公开可见的帖子，按发布时间倒序
func (r *PostRepository) ListVisible(now time.Time, offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := r.visibleQuery(now).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Post
	err := r.listQuery(r.visibleQuery(now), offset, limit).Find(&list).Error
	return list, total, err
}

// ListByCategory 某个分类下公开可见的帖子
func (r *PostRepository) ListByCategory(categoryID uint64, now time.Time, offset, limit int) ([]model.Post, int64, error) {
	var total int64
	if err := r.visibleQuery(now).Where("posts.category_id = ?", categoryID).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Post
	err := r.listQuery(r.visibleQuery(now).Where("posts.category_id = ?", categoryID), offset, limit).Find(&list).Error
	return list, total, err
}

// ListByAuthor 用户主页列表。onlyVisible=false 时作者看自己的全部帖子
func (r *PostRepository) ListByAuthor(authorID uint64, onlyVisible bool, now time.Time, offset, limit int) ([]model.Post, int64, error) {
	q := func() *gorm.DB {
		if onlyVisible {
			return r.visibleQuery(now).Where("posts.author_id = ?", authorID)
		}
		return r.DB.Model(&model.Post{}).Where("posts.author_id = ?", authorID)
	}

	var total int64
	if err := q().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var list []model.Post
	err := r.listQuery(q(), offset, limit).Find(&list).Error
	return list, total, err
}

// FindVisibleByID 详情页（未登录）：只允许公开可见的帖子
func (r *PostRepository) FindVisibleByID(id uint64, now time.Time) (*model.Post, error) {
	var post model.Post
	err := r.visibleQuery(now).
		Preload("Category").
		Preload("Location").
		Preload("Author").
		Where("posts.id = ?", id).
		First(&post).Error
	return &post, err
}

// FindByIDForViewer 详情页（已登录）：公开可见，或者查看者就是作者
func (r *PostRepository) FindByIDForViewer(id, viewerID uint64, now time.Time) (*model.Post, error) {
	var post model.Post
	err := r.DB.Model(&model.Post{}).
		Joins("JOIN categories ON categories.id = posts.category_id").
		Where("posts.id = ?", id).
		Where("("+visiblePostCond+") OR posts.author_id = ?", true, true, now, viewerID).
		Preload("Category").
		Preload("Location").
		Preload("Author").
		First(&post).Error
	return &post, err
}

// FindByID 不带可见性过滤，编辑/删除前的归属检查用
func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ?", id).Error
	return &post, err
}

// Create 建帖，已发布的帖子同事务写 outbox
func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if !post.IsPublished {
			return nil
		}
		return insertOutbox(tx, EventPostPublished, post.AuthorID, post.ID)
	})
}

func (r *PostRepository) Update(post *model.Post) error {
	return r.DB.Model(post).
		Select("Title", "Text", "PubDate", "CategoryID", "LocationID", "IsPublished").
		Updates(post).Error
}

// Delete 硬删除，评论由外键级联
func (r *PostRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Post{}, id).Error
}
