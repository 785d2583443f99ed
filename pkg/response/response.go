package response

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ErrorBody 失败响应体
type ErrorBody struct {
	Error string `json:"error"`
}

// Success 返回 200 与业务数据
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

func Fail(c *gin.Context, httpStatus int, msg string) {
	c.JSON(httpStatus, ErrorBody{Error: msg})
}

// BindError 把 gin 绑定错误转成可读的参数错误
func BindError(err error) *BizError {
	if errors.Is(err, io.EOF) {
		return ErrMissingParameter
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return InvalidParameter("Invalid request body")
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			return ErrMissingParameter
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s]", fe.Field(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
		}
	}
	return InvalidParameter(strings.Join(msgs, "; "))
}
