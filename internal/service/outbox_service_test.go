package service

import (
	"context"
	"errors"
	"testing"

	"Blogicum/internal/model"
	"Blogicum/internal/repository/mysql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestDrainOnce_MarksSuccessAndRetry(t *testing.T) {
	gdb, mock := newMockRepoDB(t)

	mock.ExpectQuery("SELECT \\* FROM `blog_outbox` WHERE status = 0 ORDER BY id ASC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "event_type", "post_id"}).
			AddRow(1, mysql.EventPostPublished, 5).
			AddRow(2, mysql.EventCommentAdded, 5))

	// 第 1 条成功、第 2 条失败：分别落 status=1 和 status=2
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `blog_outbox` SET .*status.*=.* WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `blog_outbox` SET .* WHERE id = \\?").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	sent := []uint64{}
	r := &OutboxRelayer{
		repo:      &mysql.OutboxRepository{DB: gdb},
		batchSize: 200,
		sender: func(ctx context.Context, ob *model.BlogOutbox) error {
			sent = append(sent, ob.ID)
			if ob.ID == 2 {
				return errors.New("broker down")
			}
			return nil
		},
	}
	r.drainOnce(context.Background())

	assert.Equal(t, []uint64{1, 2}, sent)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDrainOnce_EmptyBatchIsQuiet(t *testing.T) {
	gdb, mock := newMockRepoDB(t)

	mock.ExpectQuery("SELECT \\* FROM `blog_outbox`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	r := &OutboxRelayer{
		repo: &mysql.OutboxRepository{DB: gdb},
		sender: func(ctx context.Context, ob *model.BlogOutbox) error {
			t.Fatal("sender must not run on empty batch")
			return nil
		},
	}
	r.drainOnce(context.Background())
	assert.NoError(t, mock.ExpectationsWereMet())
}
