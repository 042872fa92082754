package public

import (
	"strconv"

	"github.com/carvedrock/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品列表，支持 category 过滤（不区分大小写）
func (h *Handler) GetProducts(c *gin.Context) {
	category := c.Query("category")
	products, err := h.ProductService.List(c.Request.Context(), category)
	if err != nil {
		logHandlerError(c, "products_list_failed", err)
		response.Internal(c, "error.internal")
		return
	}
	response.Success(c, gin.H{"items": products})
}

// GetProductByID 获取商品详情
func (h *Handler) GetProductByID(c *gin.Context) {
	rawID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || rawID == 0 {
		response.BadRequest(c, "error.bad_request")
		return
	}
	product, err := h.ProductService.GetByID(uint(rawID))
	if err != nil {
		logHandlerError(c, "product_fetch_failed", err)
		response.Internal(c, "error.internal")
		return
	}
	if product == nil {
		response.NotFound(c, "error.product_not_found")
		return
	}
	response.Success(c, product)
}
