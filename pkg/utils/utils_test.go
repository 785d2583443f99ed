package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"forwarded list", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "203.0.113.7"},
		{"real ip fallback", map[string]string{"X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		{"forwarded wins", map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.2"}, "203.0.113.7"},
		{"unknown", nil, "unknown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodPost, "/api/share", nil)
			for k, v := range tc.headers {
				c.Request.Header.Set(k, v)
			}
			if got := ClientIP(c); got != tc.want {
				t.Fatalf("ClientIP = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestHashIP(t *testing.T) {
	a := HashIP("203.0.113.7")
	if len(a) != 16 {
		t.Fatalf("unexpected hash length %d", len(a))
	}
	if a != HashIP("203.0.113.7") || a == HashIP("203.0.113.8") {
		t.Fatal("hash must be stable and distinguish inputs")
	}
}

func TestHashIDRoundTrip(t *testing.T) {
	hash := GenHashID("salt", 1234567890123)
	id, err := DecodeHashID("salt", hash)
	if err != nil {
		t.Fatalf("DecodeHashID failed: %v", err)
	}
	if id != 1234567890123 {
		t.Fatalf("got %d", id)
	}
	if no := GenerateOutTradeNo("FH", "salt", 1234567890123); len(no) > 32 {
		t.Fatalf("out_trade_no too long: %s", no)
	}
}

func TestExcerpt(t *testing.T) {
	src := `<p>Hello <b>world</b></p><script>alert(1)</script><p>second</p>`
	if got := HTMLToText(src); got != "Hello world second" {
		t.Fatalf("HTMLToText = %q", got)
	}
	if got := Excerpt(src, 5); got != "Hello…" {
		t.Fatalf("Excerpt = %q", got)
	}
}
