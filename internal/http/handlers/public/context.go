package public

import (
	"github.com/carvedrock/storefront/internal/constants"
	"github.com/carvedrock/storefront/internal/logger"
	"github.com/carvedrock/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionKeyContextKey 会话 key 在 gin context 中的存放位置，由会话中间件写入
const SessionKeyContextKey = "session_key"

// getIdentity 从请求中解析调用方身份：会话 key 来自会话中间件，
// 用户身份来自受信的代理注入头
func getIdentity(c *gin.Context) service.Identity {
	return service.NewIdentity(
		c.GetString(SessionKeyContextKey),
		c.GetHeader(constants.HeaderIdentityProvider),
		c.GetHeader(constants.HeaderPrincipalID),
	)
}

// logHandlerError 记录处理器内部错误，响应体只回生成的通用错误
func logHandlerError(c *gin.Context, message string, err error) {
	requestID := ""
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			requestID = id
		}
	}
	logger.Errorw(message, "request_id", requestID, "path", c.Request.URL.Path, "error", err)
}
