package utils

import (
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/blake2b"
)

func PanicTrace(err interface{}) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "%v\n", err)
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fmt.Fprintf(buf, "%s:%d (0x%x)\n", file, line, pc)
	}
	return buf.String()
}

// ClientIP 取代理头中的客户端地址：X-Forwarded-For 第一项，其次 X-Real-IP，都没有时为 unknown
func ClientIP(c *gin.Context) string {
	if forwarded := c.GetHeader("X-Forwarded-For"); forwarded != "" {
		if first := strings.TrimSpace(strings.Split(forwarded, ",")[0]); first != "" {
			return first
		}
	}
	if realIP := strings.TrimSpace(c.GetHeader("X-Real-IP")); realIP != "" {
		return realIP
	}
	return "unknown"
}

// HashIP 浏览记录只保存 IP 摘要
func HashIP(ip string) string {
	sum := blake2b.Sum256([]byte(ip))
	return fmt.Sprintf("%x", sum[:8])
}
