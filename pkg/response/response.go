package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/booktracker/pkg/errors"
	"github.com/xiebiao/booktracker/pkg/logger"
)

// 统一响应辅助函数
// 设计说明：
// 1. 本服务面向独立的SPA前端，遵循REST语义：
//    成功直接返回资源JSON（200/201/204），失败只返回HTTP状态码
// 2. 业务错误码（pkg/errors）在这里统一翻译为HTTP状态码，
//    handler不需要逐个判断错误类型
// 3. 4xx/5xx响应不携带响应体，内部错误只记录到服务端日志

// OK 200 + 资源JSON
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 + 新建资源JSON，并设置Location头
func Created(c *gin.Context, location string, data interface{}) {
	if location != "" {
		c.Header("Location", location)
	}
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 无响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	book, err := useCase.Execute(...)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)

	status := HTTPStatus(appErr.Code)

	// 服务端错误记录完整内部错误，客户端错误记录业务信息
	if status >= http.StatusInternalServerError {
		logger.L().Error("请求处理失败",
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Err),
		)
	} else {
		logger.L().Debug("业务规则拒绝请求",
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.String("message", appErr.Message),
		)
	}

	c.Status(status)
}

// BindError 请求体绑定失败 → 400
// JSON语法错误、类型不匹配等都归为参数错误
func BindError(c *gin.Context, err error) {
	Error(c, &apperrors.AppError{
		Code:    apperrors.ErrCodeBindError,
		Message: "请求体解析失败",
		Err:     err,
	})
}

// HTTPStatus 业务错误码 → HTTP状态码
// 映射规则：
// - 参数校验失败、重复图书 → 400
// - 资源不存在 → 404
// - 存储/缓存/其他内部故障 → 500
func HTTPStatus(code int) int {
	switch {
	case code >= 40900 && code < 41000:
		return http.StatusBadRequest
	case code >= 40400 && code < 40500:
		return http.StatusNotFound
	case code >= 40000 && code < 40100:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
