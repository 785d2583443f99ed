package response

import (
	"FlowHub/pkg/log"
	"FlowHub/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

var (
	ErrMissingParameter            = NewError(http.StatusBadRequest, "Missing required parameters")
	ErrInvalidResourceType         = NewError(http.StatusBadRequest, "Invalid resource type")
	ErrInvalidPlatform             = NewError(http.StatusBadRequest, "Invalid platform")
	ErrUnauthenticated             = NewError(http.StatusUnauthorized, "Unauthorized")
	ErrForbidden                   = NewError(http.StatusForbidden, "Forbidden")
	ErrNotFound                    = NewError(http.StatusNotFound, "Not found")
	ErrNoEmailFound                = NewError(http.StatusBadRequest, "No email found")
	ErrSignatureVerificationFailed = NewError(http.StatusBadRequest, "Signature verification failed")
	ErrConfigurationMissing        = NewError(http.StatusInternalServerError, "Webhook secret not configured")
	ErrInternal                    = NewError(http.StatusInternalServerError, "Internal server error")
)

// InvalidParameter 参数格式错误
func InvalidParameter(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

func ErrorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("panic recovered", zap.String("path", c.Request.URL.Path), zap.String("trace", utils.PanicTrace(r)))
				Fail(c, http.StatusInternalServerError, ErrInternal.Msg)
				c.Abort()
			}
		}()

		c.Next()
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, ErrorBody{Error: msg})
}
