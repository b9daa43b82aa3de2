package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"Blogicum/internal/middleware"
	"Blogicum/internal/repository/mysql"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// newEditTestEngine sqlmock 顶替全局 DB，模板走真实文件，登录态直接注入上下文
func newEditTestEngine(t *testing.T, userID uint64) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	mysql.DB = gdb

	r := gin.New()
	r.LoadHTMLGlob("../../web/templates/*.html")
	h := NewPostHandler()
	r.POST("/posts/:id/edit", func(c *gin.Context) {
		c.Set(middleware.ContextUserIDKey, userID)
		c.Set(middleware.ContextUsernameKey, "pike")
	}, h.Edit)
	return r, mock
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

func TestEdit_EmptyTitleRerendersForm(t *testing.T) {
	r, mock := newEditTestEngine(t, 1)

	// 归属预检 + Update 里的二次归属检查
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 1))
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 1))
	// 重渲染表单要的下拉项
	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE is_published = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))
	mock.ExpectQuery("SELECT \\* FROM `locations` WHERE is_published = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := postForm(r, "/posts/5/edit", url.Values{
		"title":       {""},
		"text":        {"body"},
		"category_id": {"2"},
	})

	// 校验失败重新渲染表单，绝不是 500
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "title required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEdit_EmptyTextRerendersForm(t *testing.T) {
	r, mock := newEditTestEngine(t, 1)

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 1))
	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 1))
	mock.ExpectQuery("SELECT \\* FROM `categories` WHERE is_published = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}))
	mock.ExpectQuery("SELECT \\* FROM `locations` WHERE is_published = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	w := postForm(r, "/posts/5/edit", url.Values{
		"title":       {"hello"},
		"text":        {""},
		"category_id": {"2"},
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "text required")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEdit_NonAuthorMalformedFormRedirects(t *testing.T) {
	r, mock := newEditTestEngine(t, 1)

	mock.ExpectQuery("SELECT \\* FROM `posts` WHERE id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id"}).AddRow(5, 2))

	// 连 category_id 都没填：归属检查在表单解析之前，非作者一律静默跳回详情
	w := postForm(r, "/posts/5/edit", url.Values{"title": {"x"}})

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/5", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
