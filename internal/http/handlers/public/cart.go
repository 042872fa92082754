package public

import (
	"errors"
	"strconv"

	"github.com/carvedrock/storefront/internal/http/response"
	"github.com/carvedrock/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CartItemRequest 购物车加购请求
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	items, err := h.CartService.GetCart(getIdentity(c))
	if err != nil {
		if errors.Is(err, service.ErrMissingSessionKey) {
			response.BadRequest(c, "error.missing_session")
			return
		}
		logHandlerError(c, "cart_fetch_failed", err)
		response.Internal(c, "error.internal")
		return
	}
	response.Success(c, gin.H{"items": items})
}

// AddCartItem 加入购物车。quantity <= 0 等同于移除该商品
func (h *Handler) AddCartItem(c *gin.Context) {
	var req CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "error.bad_request")
		return
	}
	identity := getIdentity(c)

	if req.Quantity <= 0 {
		if err := h.CartService.RemoveFromCart(c.Request.Context(), identity, req.ProductID); err != nil {
			if errors.Is(err, service.ErrMissingSessionKey) {
				response.BadRequest(c, "error.missing_session")
				return
			}
			logHandlerError(c, "cart_remove_failed", err)
			response.Internal(c, "error.internal")
			return
		}
		response.Success(c, gin.H{"updated": true})
		return
	}

	product, err := h.ProductService.GetByID(req.ProductID)
	if err != nil {
		logHandlerError(c, "cart_product_fetch_failed", err)
		response.Internal(c, "error.internal")
		return
	}
	if product == nil {
		response.NotFound(c, "error.product_not_found")
		return
	}

	if err := h.CartService.AddToCart(c.Request.Context(), identity, product, req.Quantity); err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotAvailable):
			response.BadRequest(c, "error.product_not_available")
		case errors.Is(err, service.ErrMissingSessionKey):
			response.BadRequest(c, "error.missing_session")
		default:
			logHandlerError(c, "cart_add_failed", err)
			response.Internal(c, "error.internal")
		}
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 从购物车移除商品，商品不存在时同样返回成功
func (h *Handler) DeleteCartItem(c *gin.Context) {
	rawID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
	if err != nil || rawID == 0 {
		response.BadRequest(c, "error.bad_request")
		return
	}
	if err := h.CartService.RemoveFromCart(c.Request.Context(), getIdentity(c), uint(rawID)); err != nil {
		if errors.Is(err, service.ErrMissingSessionKey) {
			response.BadRequest(c, "error.missing_session")
			return
		}
		logHandlerError(c, "cart_remove_failed", err)
		response.Internal(c, "error.internal")
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	if err := h.CartService.ClearCart(c.Request.Context(), getIdentity(c)); err != nil {
		if errors.Is(err, service.ErrMissingSessionKey) {
			response.BadRequest(c, "error.missing_session")
			return
		}
		logHandlerError(c, "cart_clear_failed", err)
		response.Internal(c, "error.internal")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
