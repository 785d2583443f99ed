package middleware

import (
	"FlowHub/pkg/context"
	"FlowHub/pkg/log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const HeaderRequestID = "X-Request-ID"

// RequestID 透传或生成请求 ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Header(HeaderRequestID, rid)
		c.Next()
	}
}

// GinZap 请求日志
func GinZap() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("latency", time.Since(start)),
			zap.String("request_id", c.GetString(HeaderRequestID)),
		}
		if uid, err := context.GetUserID(c); err == nil {
			fields = append(fields, zap.String("user_id", uid))
		}
		if len(c.Errors) > 0 {
			log.L.Error(c.Errors.String(), fields...)
			return
		}
		switch {
		case c.Writer.Status() >= 500:
			log.L.Error("request", fields...)
		case c.Writer.Status() >= 400:
			log.L.Warn("request", fields...)
		default:
			log.L.Info("request", fields...)
		}
	}
}
