package service

import (
	"context"
	"time"

	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"
)

type Sender func(ctx context.Context, ob *model.BlogOutbox) error

// OutboxRelayer 把 blog_outbox 里的待投递事件批量交给 kafka
type OutboxRelayer struct {
	repo      *mysql.OutboxRepository
	batchSize int
	interval  time.Duration
	sender    Sender
}

func NewOutboxRelayer(sender Sender) *OutboxRelayer {
	return &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: mysql.DB},
		batchSize: 200,
		interval:  time.Second,
		sender:    sender,
	}
}

func (r *OutboxRelayer) Run(ctx context.Context) {
	t := time.NewTicker(r.interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			r.drainOnce(ctx)
		}
	}
}

func (r *OutboxRelayer) drainOnce(ctx context.Context) {
	rows, err := r.repo.List(ctx, r.batchSize)
	if err != nil {
		pkg.Logger.Errorw("outbox query failed", "err", err)
		return
	}
	for i := range rows {
		ob := rows[i]
		if err = r.sender(ctx, &ob); err != nil {
			_ = r.repo.RetryUpdate(ctx, ob.ID)
			continue
		}
		_ = r.repo.SuccessUpdate(ctx, ob.ID)
	}
}

// KafkaSender 以帖子 id 作为分区键，同一帖子的事件保序
func KafkaSender(w *pkg.EventWriter) Sender {
	return func(ctx context.Context, ob *model.BlogOutbox) error {
		return w.Write(ctx, ob.PostID, []byte(ob.Payload))
	}
}

// LogSender 没配 kafka 时的兜底 sender
func LogSender(ctx context.Context, ob *model.BlogOutbox) error {
	pkg.Logger.Infow("outbox send", "type", ob.EventType, "actor", ob.ActorID, "post", ob.PostID)
	return nil
}
