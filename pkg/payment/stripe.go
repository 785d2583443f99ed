package payment

import (
	"FlowHub/config"
	"context"
	"errors"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

var ErrNotConfigured = errors.New("payment provider not configured")

type CheckoutParams struct {
	UserID     string
	Email      string
	PriceID    string
	PlanID     string
	IsYearly   bool
	SuccessURL string
	CancelURL  string
}

type CheckoutSession struct {
	ID  string
	URL string
}

// WebhookEvent 验签后的 Stripe 事件，Object 为 data.object 原始 JSON
type WebhookEvent struct {
	ID     string
	Type   string
	Object []byte
}

// StripeClient 显式构造并注入，不使用 stripe.Key 全局变量
type StripeClient struct {
	api           *client.API
	webhookSecret string
}

func NewStripeClient(conf *config.Config) *StripeClient {
	s := &StripeClient{webhookSecret: conf.Stripe.WebhookSecret}
	if conf.Stripe.SecretKey != "" {
		s.api = &client.API{}
		s.api.Init(conf.Stripe.SecretKey, nil)
	}
	return s
}

func (s *StripeClient) CreateCheckoutSession(ctx context.Context, p CheckoutParams) (*CheckoutSession, error) {
	if s.api == nil {
		return nil, ErrNotConfigured
	}
	interval := "monthly"
	if p.IsYearly {
		interval = "yearly"
	}
	metadata := map[string]string{
		"userId":   p.UserID,
		"planId":   p.PlanID,
		"interval": interval,
	}
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{Price: stripe.String(p.PriceID), Quantity: stripe.Int64(1)},
		},
		SuccessURL:        stripe.String(p.SuccessURL),
		CancelURL:         stripe.String(p.CancelURL),
		ClientReferenceID: stripe.String(p.UserID),
		SubscriptionData: &stripe.CheckoutSessionSubscriptionDataParams{
			Metadata: metadata,
		},
	}
	if p.Email != "" {
		params.CustomerEmail = stripe.String(p.Email)
	}
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	sess, err := s.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, err
	}
	return &CheckoutSession{ID: sess.ID, URL: sess.URL}, nil
}

// ParseWebhook 校验 Stripe-Signature 并解析事件
func (s *StripeClient) ParseWebhook(payload []byte, signature string) (*WebhookEvent, error) {
	if s.webhookSecret == "" {
		return nil, ErrNotConfigured
	}
	event, err := webhook.ConstructEventWithOptions(payload, signature, s.webhookSecret,
		webhook.ConstructEventOptions{IgnoreAPIVersionMismatch: true})
	if err != nil {
		return nil, err
	}
	out := &WebhookEvent{ID: event.ID, Type: string(event.Type)}
	if event.Data != nil {
		out.Object = event.Data.Raw
	}
	return out, nil
}
