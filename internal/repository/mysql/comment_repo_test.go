package mysql

import (
	"testing"

	"Blogicum/internal/model"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCommentFindByID_ScopedToPost(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := &CommentRepository{DB: gdb}

	// 评论查询必须同时限定 post_id，跨帖子的 id 等同不存在
	mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = \\? AND post_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.FindByID(7, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentCreate_WritesOutbox(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := &CommentRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `comments`").
		WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectExec("INSERT INTO `blog_outbox`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	comment := &model.Comment{Text: "nice", PostID: 5, AuthorID: 2}
	require.NoError(t, r.Create(comment))
	assert.Equal(t, uint64(11), comment.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDelete(t *testing.T) {
	gdb, mock := newMockDB(t)
	r := &CommentRepository{DB: gdb}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `comments`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, r.Delete(11))
	assert.NoError(t, mock.ExpectationsWereMet())
}
