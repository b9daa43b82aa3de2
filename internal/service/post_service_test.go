package service

import (
	"testing"

	"Blogicum/internal/model"
	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/mysql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func newMockRepoDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func TestPaginate_ClampsToLastPage(t *testing.T) {
	s := &PostService{}

	calls := []int{}
	// 25 条记录 = 3 页；请求第 99 页要收敛到第 3 页并重查一次
	fetch := func(offset int) ([]model.Post, int64, error) {
		calls = append(calls, offset)
		return []model.Post{{ID: 1}}, 25, nil
	}

	_, pagination, err := s.paginate(99, fetch)
	require.NoError(t, err)
	assert.Equal(t, 3, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, []int{98 * pkg.PageSize, 2 * pkg.PageSize}, calls)
}

func TestPaginate_NonPositivePageGoesToLast(t *testing.T) {
	s := &PostService{}

	calls := []int{}
	// ?page=0 和负数都落到末页，非法页码从第 1 页探总数后重查
	fetch := func(offset int) ([]model.Post, int64, error) {
		calls = append(calls, offset)
		return []model.Post{{ID: 1}}, 25, nil
	}

	_, pagination, err := s.paginate(0, fetch)
	require.NoError(t, err)
	assert.Equal(t, 3, pagination.CurrentPage)
	assert.Equal(t, []int{0, 2 * pkg.PageSize}, calls)
}

func TestPaginate_ValidPageSingleQuery(t *testing.T) {
	s := &PostService{}

	calls := 0
	fetch := func(offset int) ([]model.Post, int64, error) {
		calls++
		return []model.Post{{ID: 1}}, 25, nil
	}

	_, pagination, err := s.paginate(2, fetch)
	require.NoError(t, err)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.True(t, pagination.HasNext)
	assert.True(t, pagination.HasPrev)
	assert.Equal(t, 1, calls)
}

func TestGetOwned_NotAuthor(t *testing.T) {
	gdb, mock := newMockRepoDB(t)
	s := &PostService{repo: &mysql.PostRepository{DB: gdb}}

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 2))

	// 用户 1 不是作者，任何改动都应该被拒
	_, err := s.GetOwned(1, 5)
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetOwned_NotFound(t *testing.T) {
	gdb, mock := newMockRepoDB(t)
	s := &PostService{repo: &mysql.PostRepository{DB: gdb}}

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := s.GetOwned(1, 404)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDelete_NotAuthorIsNoOp(t *testing.T) {
	gdb, mock := newMockRepoDB(t)
	s := &PostService{repo: &mysql.PostRepository{DB: gdb}}

	// 只应发生归属检查的读，绝不能出现 DELETE
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 2))

	err := s.Delete(1, 5)
	assert.ErrorIs(t, err, ErrNotAuthor)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ValidatesTitle(t *testing.T) {
	s := &PostService{}
	_, err := s.Create(1, PostInput{Text: "body", CategoryID: 1})
	assert.ErrorIs(t, err, ErrTitleEmpty)
}
