package model

import "time"

// BlogOutbox 博客事件外发表
type BlogOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // post_published / comment_added
	ActorID   uint64 `gorm:"not null"`
	PostID    uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (BlogOutbox) TableName() string { return "blog_outbox" }
