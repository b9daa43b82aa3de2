package middleware

import (
	"net/http"

	"Blogicum/internal/pkg"
	"Blogicum/internal/repository/redis"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserIDKey   = "user_id"
	ContextUsernameKey = "username"

	// TokenCookie 登录态放 cookie，页面应用不走 Authorization 头
	TokenCookie = "blog_token"
	// RefreshCookie access 过期后静默续签用
	RefreshCookie = "blog_refresh"

	LoginPath = "/auth/login"
)

// SetAuthCookies 下发一对 token cookie，refresh 活得比 access 久
func SetAuthCookies(c *gin.Context, pair *pkg.Pair) {
	c.SetCookie(TokenCookie, pair.AccessToken, int(pkg.AccessTTL.Seconds()), "/", "", false, true)
	c.SetCookie(RefreshCookie, pair.RefreshToken, int(pkg.RefreshTTL.Seconds()), "/", "", false, true)
}

func ClearAuthCookies(c *gin.Context) {
	c.SetCookie(TokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(RefreshCookie, "", -1, "/", "", false, true)
}

// identify 解析 cookie 里的 access token 并和 redis 里的登录态比对。
// access 缺失或过期时走 refresh 静默续签，任何一步失败都返回 nil。
func identify(c *gin.Context) *pkg.Claims {
	userRep := &redis.UserRepository{}

	tokenStr, err := c.Cookie(TokenCookie)
	if err == nil && tokenStr != "" {
		claims, err := pkg.ParseAccess(tokenStr)
		if err == nil {
			originToken, err := userRep.GetUserToken(claims.UserID)
			if err != nil || originToken != tokenStr {
				// 在别处登录过，旧 cookie 作废，refresh 也不能救
				return nil
			}
			if err = userRep.ExtendUserToken(claims.UserID); err != nil {
				return nil
			}
			return claims
		}
	}
	return renew(c, userRep)
}

// renew 用 refresh cookie 换新的一对 token。登录态（未登出、未闲置过期）
// 还在 redis 里才放行，新 access 顶掉旧的继续单点登录。
func renew(c *gin.Context, userRep *redis.UserRepository) *pkg.Claims {
	refreshStr, err := c.Cookie(RefreshCookie)
	if err != nil || refreshStr == "" {
		return nil
	}

	pair, err := pkg.Refresh(refreshStr)
	if err != nil {
		return nil
	}
	claims, err := pkg.ParseAccess(pair.AccessToken)
	if err != nil {
		return nil
	}

	if _, err = userRep.GetUserToken(claims.UserID); err != nil {
		return nil
	}
	if err = userRep.AddUserToken(claims.UserID, pair.AccessToken); err != nil {
		return nil
	}
	SetAuthCookies(c, pair)
	return claims
}

// AuthMiddleware 登录保护：未登录跳转到登录页而不是返回 401
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := identify(c)
		if claims == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextUsernameKey, claims.Username)
		c.Next()
	}
}

// CurrentUserMiddleware 公开页面用：能识别就注入身份，识别不了按匿名继续
func CurrentUserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims := identify(c); claims != nil {
			c.Set(ContextUserIDKey, claims.UserID)
			c.Set(ContextUsernameKey, claims.Username)
		}
		c.Next()
	}
}

// UserID 从上下文取当前用户 id，匿名为 0
func UserID(c *gin.Context) uint64 {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0
	}
	id, _ := v.(uint64)
	return id
}

func Username(c *gin.Context) string {
	v, ok := c.Get(ContextUsernameKey)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}
