package middleware

import (
	"FlowHub/pkg/context"
	"FlowHub/pkg/jwt"
	"FlowHub/pkg/log"
	"FlowHub/pkg/response"
	base "context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminChecker 判断用户是否为管理员
type AdminChecker interface {
	IsAdmin(ctx base.Context, userID string) (bool, error)
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Auth 要求有效会话，用户 ID 写入上下文
func Auth(verifier *jwt.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.ErrUnauthenticated.Msg)
			return
		}
		claims, err := verifier.ParseToken(token)
		if err != nil {
			log.L.Debug("parse token failed", zap.Error(err))
			response.Abort(c, http.StatusUnauthorized, response.ErrUnauthenticated.Msg)
			return
		}
		c.Set(context.CtxUserID, claims.Subject)
		c.Set(context.CtxEmail, claims.Email)
		c.Next()
	}
}

// OptionalAuth 有合法令牌时写入用户 ID，否则按匿名请求继续
func OptionalAuth(verifier *jwt.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := bearerToken(c); ok {
			if claims, err := verifier.ParseToken(token); err == nil {
				c.Set(context.CtxUserID, claims.Subject)
				c.Set(context.CtxEmail, claims.Email)
			}
		}
		c.Next()
	}
}

// RequireAdmin 需放在 Auth 之后
func RequireAdmin(checker AdminChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		uid, err := context.GetUserID(c)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, response.ErrUnauthenticated.Msg)
			return
		}
		ok, err := checker.IsAdmin(c.Request.Context(), uid)
		if err != nil {
			log.L.Error("check admin failed", zap.String("user_id", uid), zap.Error(err))
			response.Abort(c, http.StatusInternalServerError, response.ErrInternal.Msg)
			return
		}
		if !ok {
			response.Abort(c, http.StatusForbidden, response.ErrForbidden.Msg)
			return
		}
		c.Next()
	}
}
