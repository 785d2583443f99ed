package handler

import (
	"FlowHub/middleware"
	"FlowHub/pkg/context"
	"FlowHub/pkg/jwt"
	"FlowHub/pkg/log"
	"FlowHub/pkg/response"
	"FlowHub/service"
	"FlowHub/types"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Pay struct {
	PayService service.IPayService
	Verifier   *jwt.Verifier
}

func (p *Pay) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(p.Verifier)
	pay := r.Group("/payments")
	{
		pay.POST("/create-checkout-session", authorize, context.Wrap(p.CreateCheckoutSession))
		pay.POST("/wechat/prepay", authorize, context.Wrap(p.WechatPrepay))
		pay.POST("/wechat/notify", p.WechatNotify) // 支付回调
		pay.GET("/wechat/orders/:order_sn", authorize, context.Wrap(p.QueryOrder))
	}
}

func (p *Pay) CreateCheckoutSession(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	resp, err := p.PayService.CreateCheckoutSession(c.Request.Context(), uid, c.GetString(context.CtxEmail), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Pay) WechatPrepay(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.WechatPrepayReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	resp, err := p.PayService.WechatPrepay(c.Request.Context(), uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// WechatNotify 微信要求按其格式应答，失败时会重试通知
func (p *Pay) WechatNotify(c *gin.Context) {
	if err := p.PayService.WechatNotify(c.Request.Context(), c.Request); err != nil {
		log.L.Error("处理微信支付回调失败", zap.Error(err))
		c.JSON(http.StatusInternalServerError, types.WechatNotifyResp{Code: "FAIL", Message: "失败"})
		return
	}
	c.JSON(http.StatusOK, types.WechatNotifyResp{Code: "SUCCESS", Message: "成功"})
}

func (p *Pay) QueryOrder(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	orderSn := c.Param("order_sn")
	if orderSn == "" {
		return response.ErrMissingParameter
	}
	order, err := p.PayService.GetOrder(c.Request.Context(), uid, orderSn)
	if err != nil {
		return err
	}
	response.Success(c, order)
	return nil
}
