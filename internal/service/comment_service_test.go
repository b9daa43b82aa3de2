package service

import (
	"testing"

	"Blogicum/internal/repository/mysql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestCommentAdd_EmptyText(t *testing.T) {
	s := &CommentService{}
	_, err := s.Add(1, 5, "")
	assert.ErrorIs(t, err, ErrCommentEmpty)
}

func TestCommentAdd_UnknownPost(t *testing.T) {
	gdb, mock := newMockRepoDB(t)
	s := &CommentService{
		repo:     &mysql.CommentRepository{DB: gdb},
		postRepo: &mysql.PostRepository{DB: gdb},
	}

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.Add(1, 404, "hello")
	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentUpdate_NotAuthorIsNoOp(t *testing.T) {
	gdb, mock := newMockRepoDB(t)
	s := &CommentService{repo: &mysql.CommentRepository{DB: gdb}}

	// 归属检查读到别人的评论后不能再有 UPDATE
	mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = \\? AND post_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "author_id"}).AddRow(7, 5, 2))

	err := s.Update(1, 5, 7, "edited")
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCommentDelete_NotFound(t *testing.T) {
	gdb, mock := newMockRepoDB(t)
	s := &CommentService{repo: &mysql.CommentRepository{DB: gdb}}

	mock.ExpectQuery("SELECT \\* FROM `comments` WHERE id = \\? AND post_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := s.Delete(1, 5, 404)
	assert.ErrorIs(t, err, ErrCommentNotFound)
}
