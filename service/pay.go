package service

import (
	"FlowHub/config"
	"FlowHub/dao"
	"FlowHub/dao/cache"
	"FlowHub/models"
	"FlowHub/pkg/log"
	"FlowHub/pkg/payment"
	"FlowHub/pkg/response"
	"FlowHub/pkg/snowflake"
	"FlowHub/pkg/utils"
	"FlowHub/types"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	webhookSourceStripe = "stripe"
	orderSnPrefix       = "FH"
)

// CheckoutProvider 订阅收银台（Stripe）
type CheckoutProvider interface {
	CreateCheckoutSession(ctx context.Context, p payment.CheckoutParams) (*payment.CheckoutSession, error)
	ParseWebhook(payload []byte, signature string) (*payment.WebhookEvent, error)
}

// WechatPayer 微信 Native 支付
type WechatPayer interface {
	NativePrepay(ctx context.Context, outTradeNo, description string, amount int64) (string, error)
	ParseNotify(ctx context.Context, req *http.Request) (*payment.WechatTransaction, error)
}

var _ IPayService = (*PayService)(nil)

type IPayService interface {
	CreateCheckoutSession(ctx context.Context, userID, email string, req *types.CheckoutReq) (*types.CheckoutResp, error)
	HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error
	HandleStripeEvent(ctx context.Context, eventType string, object []byte) error
	WechatPrepay(ctx context.Context, userID string, req *types.WechatPrepayReq) (*types.WechatPrepayResp, error)
	WechatNotify(ctx context.Context, req *http.Request) error
	GetOrder(ctx context.Context, userID, orderSn string) (*models.PaymentOrder, error)
}

type PayService struct {
	Config        *config.Config
	PlanDAO       *dao.PlanDAO
	OrderDAO      *dao.PaymentOrderDAO
	Subscriptions ISubscriptionService
	Stripe        CheckoutProvider
	Wechat        WechatPayer
	Dedup         *cache.WebhookDedup
}

func (s *PayService) CreateCheckoutSession(ctx context.Context, userID, email string, req *types.CheckoutReq) (*types.CheckoutResp, error) {
	plan, err := s.PlanDAO.GetByName(ctx, req.PlanName)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, response.InvalidParameter("Unknown plan")
	}

	site := strings.TrimRight(s.Config.Site.URL, "/")
	successPath, cancelPath := s.Config.Stripe.SuccessPath, s.Config.Stripe.CancelPath
	if successPath == "" {
		successPath = "/dashboard?checkout=success"
	}
	if cancelPath == "" {
		cancelPath = "/pricing?checkout=cancel"
	}

	sess, err := s.Stripe.CreateCheckoutSession(ctx, payment.CheckoutParams{
		UserID:     userID,
		Email:      email,
		PriceID:    req.PriceID,
		PlanID:     plan.ID,
		IsYearly:   req.IsYearly,
		SuccessURL: site + successPath,
		CancelURL:  site + cancelPath,
	})
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return nil, response.NewError(http.StatusInternalServerError, "Payment provider not configured")
		}
		return nil, err
	}
	return &types.CheckoutResp{SessionID: sess.ID, URL: sess.URL}, nil
}

func (s *PayService) HandleStripeWebhook(ctx context.Context, payload []byte, signature string) error {
	if signature == "" {
		return response.NewError(http.StatusBadRequest, "Missing Stripe-Signature header")
	}
	event, err := s.Stripe.ParseWebhook(payload, signature)
	if err != nil {
		if errors.Is(err, payment.ErrNotConfigured) {
			return response.ErrConfigurationMissing
		}
		log.L.Warn("stripe webhook signature verification failed", zap.Error(err))
		return response.ErrSignatureVerificationFailed
	}

	if seen, err := s.Dedup.Seen(ctx, webhookSourceStripe, event.ID); err != nil {
		log.L.Warn("check webhook dedup failed", zap.Error(err))
	} else if seen {
		log.L.Info("stripe webhook already processed", zap.String("event_id", event.ID))
		return nil
	}
	if err := s.HandleStripeEvent(ctx, event.Type, event.Object); err != nil {
		return err
	}
	if err := s.Dedup.Mark(ctx, webhookSourceStripe, event.ID); err != nil {
		log.L.Warn("mark webhook processed failed", zap.Error(err))
	}
	return nil
}

// HandleStripeEvent object 为事件的 data.object
func (s *PayService) HandleStripeEvent(ctx context.Context, eventType string, object []byte) error {
	obj := gjson.ParseBytes(object)
	switch eventType {
	case "checkout.session.completed":
		userID := obj.Get("client_reference_id").String()
		if userID == "" {
			userID = obj.Get("metadata.userId").String()
		}
		start := time.Now()
		end := start.AddDate(0, 1, 0)
		if obj.Get("metadata.interval").String() == "yearly" {
			end = start.AddDate(1, 0, 0)
		}
		return s.Subscriptions.Activate(ctx, &Activation{
			UserID:     userID,
			PlanID:     obj.Get("metadata.planId").String(),
			Provider:   webhookSourceStripe,
			ExternalID: obj.Get("subscription").String(),
			Start:      start,
			End:        end,
		})
	case "customer.subscription.updated":
		found, err := s.Subscriptions.UpdateExternal(ctx, obj.Get("id").String(), func(sub *models.UserSubscription) {
			sub.Status = obj.Get("status").String()
			sub.CancelAtPeriodEnd = obj.Get("cancel_at_period_end").Bool()
			if start := periodField(obj, "current_period_start"); start != nil {
				sub.CurrentPeriodStart = start
			}
			if end := periodField(obj, "current_period_end"); end != nil {
				sub.CurrentPeriodEnd = end
			}
		})
		if err == nil && !found {
			log.L.Warn("stripe subscription not found", zap.String("id", obj.Get("id").String()))
		}
		return err
	case "customer.subscription.deleted":
		_, err := s.Subscriptions.UpdateExternal(ctx, obj.Get("id").String(), func(sub *models.UserSubscription) {
			sub.Status = models.SubscriptionCanceled
			sub.CancelAtPeriodEnd = false
		})
		return err
	default:
		log.L.Info("stripe webhook ignored", zap.String("type", eventType))
		return nil
	}
}

// periodField 新版 API 把账期放在 items.data.0 下，两处都取
func periodField(obj gjson.Result, field string) *time.Time {
	v := obj.Get(field)
	if !v.Exists() {
		v = obj.Get("items.data.0." + field)
	}
	if !v.Exists() || v.Int() == 0 {
		return nil
	}
	t := time.Unix(v.Int(), 0)
	return &t
}

func (s *PayService) WechatPrepay(ctx context.Context, userID string, req *types.WechatPrepayReq) (*types.WechatPrepayResp, error) {
	plan, err := s.PlanDAO.Get(ctx, req.PlanID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, response.InvalidParameter("Unknown plan")
	}
	amount, period := plan.PriceMonthly, "月付"
	if req.IsYearly {
		amount, period = plan.PriceYearly, "年付"
	}
	if amount <= 0 {
		return nil, response.InvalidParameter("Plan is not purchasable")
	}

	id := snowflake.GenID()
	order := &models.PaymentOrder{
		ID:       id,
		OrderSn:  utils.GenerateOutTradeNo(orderSnPrefix, s.Config.WechatPayConfig.HashSalt, id),
		UserID:   userID,
		PlanID:   plan.ID,
		IsYearly: req.IsYearly,
		Amount:   amount,
		Status:   models.OrderStatusPending,
	}
	if err := s.OrderDAO.Create(ctx, order); err != nil {
		return nil, err
	}

	codeURL, err := s.Wechat.NativePrepay(ctx, order.OrderSn, s.Config.Site.Name+" "+plan.NameZh+" "+period, amount)
	if err != nil {
		log.L.Error("wechat prepay failed", zap.String("order_sn", order.OrderSn), zap.Error(err))
		if errors.Is(err, payment.ErrNotConfigured) {
			return nil, response.NewError(http.StatusInternalServerError, "Payment provider not configured")
		}
		return nil, err
	}
	return &types.WechatPrepayResp{OrderSn: order.OrderSn, CodeURL: codeURL}, nil
}

// WechatNotify 先开通套餐再置订单为已支付；已支付即已开通，重复通知直接应答
func (s *PayService) WechatNotify(ctx context.Context, req *http.Request) error {
	tx, err := s.Wechat.ParseNotify(ctx, req)
	if err != nil {
		log.L.Error("微信支付回调验签或解密失败", zap.Error(err))
		return response.ErrSignatureVerificationFailed
	}
	if tx.TradeState != "SUCCESS" {
		log.L.Info("wechat trade not success", zap.String("order_sn", tx.OutTradeNo), zap.String("state", tx.TradeState))
		return nil
	}

	order, err := s.OrderDAO.GetByOrderSn(ctx, tx.OutTradeNo)
	if err != nil {
		return err
	}
	if order == nil {
		log.L.Warn("wechat notify order not found", zap.String("order_sn", tx.OutTradeNo))
		return nil
	}
	if order.Status == models.OrderStatusPaid {
		return nil
	}

	// 开通失败时订单保持待支付，微信重试会再次开通
	now := time.Now()
	end := now.AddDate(0, 1, 0)
	if order.IsYearly {
		end = now.AddDate(1, 0, 0)
	}
	err = s.Subscriptions.Activate(ctx, &Activation{
		UserID:     order.UserID,
		PlanID:     order.PlanID,
		Provider:   "wechat",
		ExternalID: order.OrderSn,
		Start:      now,
		End:        end,
	})
	if err != nil {
		return err
	}

	updated, err := s.OrderDAO.MarkPaid(ctx, order.OrderSn, tx.TransactionID, tx.Raw, now)
	if err != nil {
		return err
	}
	if !updated {
		log.L.Info("wechat order already paid", zap.String("order_sn", order.OrderSn))
	}
	return nil
}

func (s *PayService) GetOrder(ctx context.Context, userID, orderSn string) (*models.PaymentOrder, error) {
	order, err := s.OrderDAO.GetByOrderSn(ctx, orderSn)
	if err != nil {
		return nil, err
	}
	if order == nil || order.UserID != userID {
		return nil, response.ErrNotFound
	}
	return order, nil
}
