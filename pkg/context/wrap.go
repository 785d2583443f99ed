package context

import (
	"FlowHub/pkg/log"
	"FlowHub/pkg/response"
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	CtxUserID = "user_id"
	CtxEmail  = "email"
)

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				response.Fail(c, be.Code, be.Msg)
				return
			}
			log.L.Error("request failed",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err))
			response.Fail(c, response.ErrInternal.Code, response.ErrInternal.Msg)
		}
	}
}

// GetUserID 已登录用户的身份 ID
func GetUserID(c *gin.Context) (string, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return "", response.ErrUnauthenticated
	}

	uid, ok := v.(string)
	if !ok || uid == "" {
		return "", response.ErrUnauthenticated
	}

	return uid, nil
}

// GetOptionalUserID 未登录时返回 nil
func GetOptionalUserID(c *gin.Context) *string {
	uid, err := GetUserID(c)
	if err != nil {
		return nil
	}
	return &uid
}
