package mysql

import (
	"Blogicum/internal/model"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	DB *gorm.DB
}

// FindPublishedBySlug 未发布的分类对外等同不存在
func (r *CategoryRepository) FindPublishedBySlug(slug string) (*model.Category, error) {
	var category model.Category
	err := r.DB.Where("slug = ? AND is_published = ?", slug, true).First(&category).Error
	return &category, err
}

func (r *CategoryRepository) ListPublished() ([]model.Category, error) {
	var list []model.Category
	err := r.DB.Where("is_published = ?", true).Order("title ASC").Find(&list).Error
	return list, err
}

func (r *CategoryRepository) ListLocationsPublished() ([]model.Location, error) {
	var list []model.Location
	err := r.DB.Where("is_published = ?", true).Order("name ASC").Find(&list).Error
	return list, err
}
