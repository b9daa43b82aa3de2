package mysql

import (
	"context"
	"encoding/json"
	"time"

	"Blogicum/internal/model"

	"gorm.io/gorm"
)

const (
	EventPostPublished = "post_published"
	EventCommentAdded  = "comment_added"
)

type OutboxRepository struct {
	DB *gorm.DB
}

// insertOutbox 与业务写入同事务插入事件，由 relayer 异步投递
func insertOutbox(tx *gorm.DB, event string, actorID, postID uint64) error {
	payload, _ := json.Marshal(map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"post":       postID,
	})
	ob := &model.BlogOutbox{
		EventType: event,
		ActorID:   actorID,
		PostID:    postID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}

// List 待投递事件查询
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.BlogOutbox, error) {
	var list []model.BlogOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate 投递失败，记失败并累加重试计数
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.BlogOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate 投递成功
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.BlogOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
