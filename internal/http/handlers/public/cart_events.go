package public

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
)

// StreamCartEvents 购物车变更 SSE 流。每条连接挂载时订阅广播点、
// 断开时退订；收到变更后向客户端推送 cart_updated 事件
func (h *Handler) StreamCartEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	// 缓冲为 1：慢客户端只会合并事件，不会拖住 Publish
	updates := make(chan struct{}, 1)
	subID := h.CartEvents.Subscribe(func(_ context.Context) error {
		select {
		case updates <- struct{}{}:
		default:
		}
		return nil
	})
	defer h.CartEvents.Unsubscribe(subID)

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-clientGone:
			return false
		case <-updates:
			c.SSEvent("cart_updated", "")
			return true
		}
	})
}
