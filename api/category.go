package api

import (
	"expensewise/models"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct{}

// NewCategoryHandler 创建分类处理器
func NewCategoryHandler() *CategoryHandler {
	return &CategoryHandler{}
}

// List 获取固定分类列表
// @Summary 获取分类列表
// @Tags 分类
// @Produce json
// @Success 200 {array} string "获取成功"
// @Router /categories [get]
func (h *CategoryHandler) List(c *gin.Context) {
	Success(c, models.Categories())
}
