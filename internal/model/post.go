package model

import "time"

type Post struct {
	ID          uint64    `gorm:"primaryKey"`
	Title       string    `gorm:"size:200;not null"`
	Text        string    `gorm:"type:text"`
	PubDate     time.Time `gorm:"not null;index:idx_pub_date,sort:desc"`
	AuthorID    uint64    `gorm:"not null;index:idx_author_pub"`
	CategoryID  uint64    `gorm:"not null;index:idx_category_pub"`
	LocationID  *uint64   `gorm:"index"`
	IsPublished bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Author   User      `gorm:"foreignKey:AuthorID"`
	Category Category  `gorm:"foreignKey:CategoryID"`
	Location *Location `gorm:"foreignKey:LocationID"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	// CommentCount 由列表查询的子查询填充，不建列
	CommentCount int64 `gorm:"->;-:migration"`
}
