package handler

import (
	"FlowHub/pkg/context"
	"FlowHub/pkg/response"
	"FlowHub/service"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 1MB
const maxWebhookBody = 1 << 20

type Webhook struct {
	IdentityService service.IIdentityService
	PayService      service.IPayService
}

func (h *Webhook) RegisterRouter(r gin.IRouter) {
	g := r.Group("/webhooks")
	g.POST("/identity", context.Wrap(h.Identity))
	g.POST("/stripe", context.Wrap(h.Stripe))
}

func readBody(c *gin.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		return nil, response.InvalidParameter("Invalid request body")
	}
	return body, nil
}

// Identity 验签需要原始请求体，不能先做 JSON 绑定
func (h *Webhook) Identity(c *gin.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	if err := h.IdentityService.HandleWebhook(c.Request.Context(), c.Request.Header, body); err != nil {
		return err
	}
	c.Status(http.StatusOK)
	return nil
}

func (h *Webhook) Stripe(c *gin.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	if err := h.PayService.HandleStripeWebhook(c.Request.Context(), body, c.GetHeader("Stripe-Signature")); err != nil {
		return err
	}
	response.Success(c, gin.H{"received": true})
	return nil
}
