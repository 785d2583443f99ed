package payment

import (
	"FlowHub/config"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stripe/stripe-go/v82/webhook"
	"github.com/tidwall/gjson"
)

func newStripe(secret string) *StripeClient {
	return NewStripeClient(&config.Config{Stripe: &config.StripeConfig{WebhookSecret: secret}})
}

func TestParseWebhook(t *testing.T) {
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_1","client_reference_id":"user_1"}}}`)
	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    "whsec_test",
		Timestamp: time.Now(),
	})

	ev, err := newStripe("whsec_test").ParseWebhook(signed.Payload, signed.Header)
	if err != nil {
		t.Fatalf("ParseWebhook: %v", err)
	}
	if ev.ID != "evt_1" || ev.Type != "checkout.session.completed" {
		t.Fatalf("event = %+v", ev)
	}
	if got := gjson.GetBytes(ev.Object, "client_reference_id").String(); got != "user_1" {
		t.Fatalf("object client_reference_id = %q", got)
	}

	if _, err := newStripe("whsec_other").ParseWebhook(signed.Payload, signed.Header); err == nil {
		t.Fatal("expected signature error with another secret")
	}
}

func TestStripeNotConfigured(t *testing.T) {
	s := newStripe("")
	if _, err := s.ParseWebhook([]byte(`{}`), "t=1,v1=x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("ParseWebhook err = %v", err)
	}
	if _, err := s.CreateCheckoutSession(context.Background(), CheckoutParams{PriceID: "price_1"}); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("CreateCheckoutSession err = %v", err)
	}
}

func TestWechatNotConfigured(t *testing.T) {
	w := NewWechatClient(&config.Config{WechatPayConfig: &config.WechatPayConfig{}})
	if _, err := w.NativePrepay(context.Background(), "FH1", "desc", 100); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("NativePrepay err = %v", err)
	}
}

func TestDerefString(t *testing.T) {
	if got := derefString(nil); got != "" {
		t.Fatalf("nil = %q", got)
	}
	s := "SUCCESS"
	if got := derefString(&s); got != "SUCCESS" {
		t.Fatalf("got %q", got)
	}
}
