package router

import (
	"strings"

	"github.com/carvedrock/storefront/internal/config"
	"github.com/carvedrock/storefront/internal/constants"
	publichandlers "github.com/carvedrock/storefront/internal/http/handlers/public"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware 会话中间件。从 Cookie 读取不透明会话 key，
// 没有时签发一个新的随机 key 并写回 Cookie，供购物车作匿名分区 key
func SessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	cookieName := strings.TrimSpace(cfg.CookieName)
	if cookieName == "" {
		cookieName = constants.DefaultSessionCookie
	}
	maxAge := cfg.MaxAgeSeconds
	if maxAge <= 0 {
		maxAge = constants.DefaultSessionMaxAgeSec
	}

	return func(c *gin.Context) {
		sessionKey, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(sessionKey) == "" {
			sessionKey = uuid.NewString()
		}
		// 每次访问刷新过期时间，语义等同滑动的会话空闲超时
		c.SetCookie(cookieName, sessionKey, maxAge, "/", "", cfg.Secure, true)
		c.Set(publichandlers.SessionKeyContextKey, sessionKey)
		c.Next()
	}
}
