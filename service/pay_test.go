package service

import (
	"FlowHub/dao"
	"FlowHub/dao/cache"
	"FlowHub/models"
	"FlowHub/pkg/payment"
	"FlowHub/types"
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type fakeCheckout struct {
	params payment.CheckoutParams
	event  *payment.WebhookEvent
	err    error
}

func (f *fakeCheckout) CreateCheckoutSession(_ context.Context, p payment.CheckoutParams) (*payment.CheckoutSession, error) {
	f.params = p
	if f.err != nil {
		return nil, f.err
	}
	return &payment.CheckoutSession{ID: "cs_test_1", URL: "https://checkout.stripe.com/c/cs_test_1"}, nil
}

func (f *fakeCheckout) ParseWebhook([]byte, string) (*payment.WebhookEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.event, nil
}

type fakeWechat struct {
	tx *payment.WechatTransaction
}

func (f *fakeWechat) NativePrepay(_ context.Context, outTradeNo, _ string, _ int64) (string, error) {
	return "weixin://wxpay/bizpayurl?pr=" + outTradeNo, nil
}

func (f *fakeWechat) ParseNotify(context.Context, *http.Request) (*payment.WechatTransaction, error) {
	return f.tx, nil
}

func newPayService(t *testing.T) (*PayService, *SubscriptionService) {
	t.Helper()
	db := newTestDB(t)
	seedPlans(t, db)
	conf := newTestConfig(t)
	conf.WechatPayConfig.HashSalt = "test-salt"
	subs := newSubscriptionService(db)
	return &PayService{
		Config:        conf,
		PlanDAO:       dao.NewPlanDAO(db),
		OrderDAO:      dao.NewPaymentOrderDAO(db),
		Subscriptions: subs,
		Stripe:        &fakeCheckout{},
		Wechat:        &fakeWechat{},
		Dedup:         cache.NewWebhookDedup(nil),
	}, subs
}

func TestCreateCheckoutSession(t *testing.T) {
	s, _ := newPayService(t)
	fake := s.Stripe.(*fakeCheckout)

	resp, err := s.CreateCheckoutSession(context.Background(), "u1", "a@example.com", &types.CheckoutReq{PriceID: "price_123", PlanName: "Pro", IsYearly: true})
	if err != nil {
		t.Fatalf("CreateCheckoutSession: %v", err)
	}
	if resp.SessionID != "cs_test_1" || resp.URL == "" {
		t.Fatalf("resp = %+v", resp)
	}
	if fake.params.PlanID != "pro" || fake.params.UserID != "u1" || !fake.params.IsYearly {
		t.Fatalf("params = %+v", fake.params)
	}
	if !strings.HasPrefix(fake.params.SuccessURL, s.Config.Site.URL) {
		t.Fatalf("success url = %s", fake.params.SuccessURL)
	}
}

func TestCreateCheckoutSession_NotConfigured(t *testing.T) {
	s, _ := newPayService(t)
	s.Stripe = &fakeCheckout{err: payment.ErrNotConfigured}
	_, err := s.CreateCheckoutSession(context.Background(), "u1", "", &types.CheckoutReq{PriceID: "price_123", PlanName: "Pro"})
	if bizCode(err) != http.StatusInternalServerError {
		t.Fatalf("want 500, got %v", err)
	}
}

func TestCreateCheckoutSession_UnknownPlan(t *testing.T) {
	s, _ := newPayService(t)
	fake := s.Stripe.(*fakeCheckout)
	_, err := s.CreateCheckoutSession(context.Background(), "u1", "", &types.CheckoutReq{PriceID: "price_123", PlanName: "Enterprise"})
	if bizCode(err) != http.StatusBadRequest {
		t.Fatalf("want 400, got %v", err)
	}
	if fake.params.PriceID != "" {
		t.Fatalf("stripe should not be called, params = %+v", fake.params)
	}
}

func TestHandleStripeEvent_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s, subs := newPayService(t)

	completed := `{"client_reference_id":"u1","subscription":"sub_42","metadata":{"userId":"u1","planId":"pro","interval":"yearly"}}`
	if err := s.HandleStripeEvent(ctx, "checkout.session.completed", []byte(completed)); err != nil {
		t.Fatalf("completed: %v", err)
	}
	resp, _ := subs.Get(ctx, "u1")
	if resp.Subscription == nil || resp.Plan.ID != "pro" || resp.Subscription.Status != models.SubscriptionActive {
		t.Fatalf("after checkout = %+v", resp)
	}
	if resp.Subscription.CurrentPeriodEnd.Sub(*resp.Subscription.CurrentPeriodStart).Hours() < 24*360 {
		t.Fatal("yearly checkout should grant a one year period")
	}

	updated := `{"id":"sub_42","status":"past_due","cancel_at_period_end":true,"items":{"data":[{"current_period_start":1767225600,"current_period_end":1769904000}]}}`
	if err := s.HandleStripeEvent(ctx, "customer.subscription.updated", []byte(updated)); err != nil {
		t.Fatalf("updated: %v", err)
	}
	resp, _ = subs.Get(ctx, "u1")
	if resp.Subscription.Status != models.SubscriptionPastDue || !resp.Subscription.CancelAtPeriodEnd {
		t.Fatalf("after update = %+v", resp.Subscription)
	}
	if resp.Subscription.CurrentPeriodEnd.Unix() != 1769904000 {
		t.Fatalf("period end = %v", resp.Subscription.CurrentPeriodEnd)
	}

	if err := s.HandleStripeEvent(ctx, "customer.subscription.deleted", []byte(`{"id":"sub_42"}`)); err != nil {
		t.Fatalf("deleted: %v", err)
	}
	resp, _ = subs.Get(ctx, "u1")
	if resp.Subscription.Status != models.SubscriptionCanceled {
		t.Fatalf("after delete = %+v", resp.Subscription)
	}

	if err := s.HandleStripeEvent(ctx, "invoice.created", []byte(`{}`)); err != nil {
		t.Fatalf("ignored event: %v", err)
	}
}

func TestHandleStripeWebhook(t *testing.T) {
	ctx := context.Background()
	s, subs := newPayService(t)

	if err := s.HandleStripeWebhook(ctx, []byte(`{}`), ""); bizCode(err) != http.StatusBadRequest {
		t.Fatalf("missing signature: %v", err)
	}

	s.Stripe = &fakeCheckout{err: payment.ErrNotConfigured}
	if err := s.HandleStripeWebhook(ctx, []byte(`{}`), "t=1,v1=x"); bizCode(err) != http.StatusInternalServerError {
		t.Fatalf("no secret: %v", err)
	}

	s.Stripe = &fakeCheckout{event: &payment.WebhookEvent{
		ID:     "evt_1",
		Type:   "checkout.session.completed",
		Object: []byte(`{"client_reference_id":"u7","subscription":"sub_7","metadata":{"planId":"team"}}`),
	}}
	if err := s.HandleStripeWebhook(ctx, []byte(`{}`), "t=1,v1=x"); err != nil {
		t.Fatalf("HandleStripeWebhook: %v", err)
	}
	resp, _ := subs.Get(ctx, "u7")
	if resp.Plan.ID != "team" || resp.Plan.MaxBlogs != models.Unlimited {
		t.Fatalf("team plan not activated: %+v", resp.Plan)
	}
}

func TestHandleStripeWebhook_DedupUnavailable(t *testing.T) {
	ctx := context.Background()
	s, subs := newPayService(t)
	rds := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond, MaxRetries: -1})
	t.Cleanup(func() { _ = rds.Close() })
	s.Dedup = cache.NewWebhookDedup(rds)
	s.Stripe = &fakeCheckout{event: &payment.WebhookEvent{
		ID:     "evt_2",
		Type:   "checkout.session.completed",
		Object: []byte(`{"client_reference_id":"u8","subscription":"sub_8","metadata":{"planId":"pro"}}`),
	}}

	if err := s.HandleStripeWebhook(ctx, []byte(`{}`), "t=1,v1=x"); err != nil {
		t.Fatalf("HandleStripeWebhook: %v", err)
	}
	resp, _ := subs.Get(ctx, "u8")
	if resp.Plan.ID != "pro" {
		t.Fatalf("event should still be processed when redis is down: %+v", resp.Plan)
	}
}

func TestWechatPrepayAndNotify(t *testing.T) {
	ctx := context.Background()
	s, subs := newPayService(t)

	if _, err := s.WechatPrepay(ctx, "u1", &types.WechatPrepayReq{PlanID: "free"}); bizCode(err) != http.StatusBadRequest {
		t.Fatalf("free plan must not be purchasable: %v", err)
	}

	prepay, err := s.WechatPrepay(ctx, "u1", &types.WechatPrepayReq{PlanID: "pro"})
	if err != nil {
		t.Fatalf("WechatPrepay: %v", err)
	}
	if !strings.HasPrefix(prepay.OrderSn, orderSnPrefix) || !strings.HasSuffix(prepay.CodeURL, prepay.OrderSn) {
		t.Fatalf("prepay = %+v", prepay)
	}

	s.Wechat = &fakeWechat{tx: &payment.WechatTransaction{OutTradeNo: prepay.OrderSn, TransactionID: "4200001", TradeState: "SUCCESS", Raw: []byte(`{}`)}}
	for i := 0; i < 2; i++ {
		if err := s.WechatNotify(ctx, httptestRequest()); err != nil {
			t.Fatalf("notify #%d: %v", i, err)
		}
	}

	order, err := s.GetOrder(ctx, "u1", prepay.OrderSn)
	if err != nil {
		t.Fatalf("GetOrder: %v", err)
	}
	if order.Status != models.OrderStatusPaid || order.TransactionID != "4200001" || order.PaidAt == nil {
		t.Fatalf("order = %+v", order)
	}
	if _, err := s.GetOrder(ctx, "u2", prepay.OrderSn); bizCode(err) != http.StatusNotFound {
		t.Fatalf("other user's order: %v", err)
	}

	resp, _ := subs.Get(ctx, "u1")
	if resp.Plan.ID != "pro" {
		t.Fatalf("plan after payment = %+v", resp.Plan)
	}
}

// flakySubscriptions 前 fails 次开通失败
type flakySubscriptions struct {
	*SubscriptionService
	fails int
}

func (f *flakySubscriptions) Activate(ctx context.Context, a *Activation) error {
	if f.fails > 0 {
		f.fails--
		return errors.New("db unavailable")
	}
	return f.SubscriptionService.Activate(ctx, a)
}

func TestWechatNotify_ActivationRetry(t *testing.T) {
	ctx := context.Background()
	s, subs := newPayService(t)
	s.Subscriptions = &flakySubscriptions{SubscriptionService: subs, fails: 1}

	prepay, err := s.WechatPrepay(ctx, "u1", &types.WechatPrepayReq{PlanID: "pro"})
	if err != nil {
		t.Fatalf("WechatPrepay: %v", err)
	}
	s.Wechat = &fakeWechat{tx: &payment.WechatTransaction{OutTradeNo: prepay.OrderSn, TransactionID: "4200002", TradeState: "SUCCESS", Raw: []byte(`{}`)}}

	if err := s.WechatNotify(ctx, httptestRequest()); err == nil {
		t.Fatal("first notify should fail when activation fails")
	}
	order, _ := s.GetOrder(ctx, "u1", prepay.OrderSn)
	if order.Status != models.OrderStatusPending {
		t.Fatalf("order must stay pending, got %d", order.Status)
	}

	if err := s.WechatNotify(ctx, httptestRequest()); err != nil {
		t.Fatalf("retry notify: %v", err)
	}
	order, _ = s.GetOrder(ctx, "u1", prepay.OrderSn)
	if order.Status != models.OrderStatusPaid {
		t.Fatalf("order = %+v", order)
	}
	resp, _ := subs.Get(ctx, "u1")
	if resp.Plan.ID != "pro" {
		t.Fatalf("plan after retry = %+v", resp.Plan)
	}
}

func httptestRequest() *http.Request {
	req, _ := http.NewRequest(http.MethodPost, "/api/payments/wechat/notify", strings.NewReader(`{}`))
	return req
}
