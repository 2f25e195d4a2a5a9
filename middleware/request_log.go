package middleware

import (
	"time"

	"homeledger/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求 ID 响应头
const RequestIDHeader = "X-Request-ID"

const requestLogKey = "requestLog"

// RequestLogger 为每个请求分配请求 ID 并记录访问日志
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set("requestID", requestID)
		c.Set(requestLogKey, log.With("request_id", requestID))
		c.Header(RequestIDHeader, requestID)

		start := time.Now()
		c.Next()

		kv := []interface{}{
			"request_id", requestID,
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if uid := GetCurrentUserID(c); uid != 0 {
			kv = append(kv, "user_id", uid)
		}
		if hid := GetCurrentHomeID(c); hid != 0 {
			kv = append(kv, "home_id", hid)
		}
		switch status := c.Writer.Status(); {
		case status >= 500:
			log.Error("请求失败", kv...)
		case status >= 400:
			log.Warn("请求被拒绝", kv...)
		default:
			log.Info("请求完成", kv...)
		}
	}
}

// RequestLog 带请求 ID 的日志，未经过 RequestLogger 时不输出
func RequestLog(c *gin.Context) *logger.Logger {
	if v, ok := c.Get(requestLogKey); ok {
		if l, ok := v.(*logger.Logger); ok {
			return l
		}
	}
	return logger.Nop()
}
