package types

type CheckoutReq struct {
	PriceID  string `json:"priceId" binding:"required"`
	PlanName string `json:"planName" binding:"required"`
	IsYearly bool   `json:"isYearly"`
}

type CheckoutResp struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

type WechatPrepayReq struct {
	PlanID   string `json:"planId" binding:"required"`
	IsYearly bool   `json:"isYearly"`
}

type WechatPrepayResp struct {
	OrderSn string `json:"orderSn"`
	CodeURL string `json:"codeUrl"`
}

// WechatNotifyResp 微信支付回调应答
type WechatNotifyResp struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
