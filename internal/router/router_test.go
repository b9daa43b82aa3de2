package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"Blogicum/internal/middleware"
	"Blogicum/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return InitRouter(pkg.SMTPConfig{}, "../../web/templates/*.html")
}

func TestProtectedRoutesRedirectAnonymous(t *testing.T) {
	r := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/posts/create"},
		{http.MethodPost, "/posts/1/comment"},
		{http.MethodGet, "/posts/1/edit"},
		{http.MethodGet, "/profile/edit"},
	}
	for _, p := range paths {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(p.method, p.path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusFound, w.Code, "%s %s", p.method, p.path)
		assert.Equal(t, middleware.LoginPath, w.Header().Get("Location"))
	}
}

func TestCommentAddIsPostOnly(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/posts/1/comment", nil)
	r.ServeHTTP(w, req)

	// GET 没注册这条路由
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginPageRenders(t *testing.T) {
	r := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/auth/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "form")
}
