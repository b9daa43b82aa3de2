package model

import "time"

// Category 分类下线(is_published=false)后，其下帖子全部不可见
type Category struct {
	ID          uint64 `gorm:"primaryKey"`
	Title       string `gorm:"size:64;not null"`
	Description string `gorm:"type:text"`
	Slug        string `gorm:"uniqueIndex;size:64;not null"`
	IsPublished bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Location struct {
	ID          uint64 `gorm:"primaryKey"`
	Name        string `gorm:"size:64;not null"`
	IsPublished bool   `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
