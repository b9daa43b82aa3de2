package model

import "time"

type Comment struct {
	ID        uint64 `gorm:"primaryKey"`
	Text      string `gorm:"type:text;not null"`
	PostID    uint64 `gorm:"not null;index:idx_post_created"`
	AuthorID  uint64 `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"index:idx_post_created"`
	UpdatedAt time.Time

	Author User `gorm:"foreignKey:AuthorID"`
}
