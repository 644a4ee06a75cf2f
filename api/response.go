package api

import (
	"errors"
	"net/http"
	"strings"

	"expensewise/config"
	"expensewise/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponse 错误响应，所有失败均为 {"error": "..."}
type ErrorResponse struct {
	Error string `json:"error" example:"amount must be greater than 0"`
}

// MessageResponse 删除等操作的提示响应
type MessageResponse struct {
	Message string `json:"message" example:"Transaction deleted successfully"`
}

// Success 200 响应
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// Message 200 提示响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// Error 错误响应
func Error(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, ErrorResponse{Error: message})
}

// BadRequest 400 错误响应
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound 404 错误响应
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// InternalError 500 错误响应
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// duplicateMessages 各资源违反唯一约束时的提示
var duplicateMessages = map[string]string{
	"Budget": "Budget already exists for this category and month",
}

// respondError 按错误类型映射状态码
// resource 用于 404 / 非法 ID 提示，fallback 为 release 模式下 500 的提示
func respondError(c *gin.Context, err error, resource, fallback string) {
	var ve *models.ValidationError
	switch {
	case errors.As(err, &ve):
		BadRequest(c, ve.Error())
	case errors.Is(err, models.ErrNotFound):
		NotFound(c, resource+" not found")
	case errors.Is(err, models.ErrInvalidID):
		BadRequest(c, "Invalid "+strings.ToLower(resource)+" id")
	case errors.Is(err, models.ErrDuplicate):
		msg, ok := duplicateMessages[resource]
		if !ok {
			msg = resource + " already exists"
		}
		BadRequest(c, msg)
	case errors.Is(err, models.ErrInvalidValue):
		BadRequest(c, resource+" has a value that is too long or out of range")
	default:
		_ = c.Error(err)
		InternalError(c, config.SafeErrorMessage(err, fallback))
	}
}
