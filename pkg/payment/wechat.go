package payment

import (
	"FlowHub/config"
	"FlowHub/pkg/log"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/wechatpay-apiv3/wechatpay-go/core"
	"github.com/wechatpay-apiv3/wechatpay-go/core/auth/verifiers"
	"github.com/wechatpay-apiv3/wechatpay-go/core/downloader"
	"github.com/wechatpay-apiv3/wechatpay-go/core/notify"
	"github.com/wechatpay-apiv3/wechatpay-go/core/option"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments"
	"github.com/wechatpay-apiv3/wechatpay-go/services/payments/native"
	"github.com/wechatpay-apiv3/wechatpay-go/utils"
	"go.uber.org/zap"
)

// WechatTransaction 支付回调中解密出的交易信息
type WechatTransaction struct {
	OutTradeNo    string
	TransactionID string
	TradeState    string
	Raw           []byte
}

// WechatClient 微信支付 Native 下单，未配置商户信息时所有调用返回 ErrNotConfigured
type WechatClient struct {
	conf    *config.WechatPayConfig
	client  *core.Client
	handler *notify.Handler
}

func NewWechatClient(conf *config.Config) *WechatClient {
	w := &WechatClient{conf: conf.WechatPayConfig}
	if !conf.WechatPayConfig.Enabled() {
		return w
	}
	if err := w.init(); err != nil {
		log.L.Error("init wechat pay client failed", zap.Error(err))
		w.client = nil
	}
	return w
}

// init 创建微信支付客户端（只执行一次）
func (w *WechatClient) init() error {
	mchPrivateKey, err := utils.LoadPrivateKeyWithPath(w.conf.MchPrivateKeyPath)
	if err != nil {
		return fmt.Errorf("加载商户私钥失败: %w", err)
	}

	ctx := context.Background()
	opts := []core.ClientOption{
		option.WithWechatPayAutoAuthCipher(
			w.conf.MchID,
			w.conf.MchCertificateSerialNumber,
			mchPrivateKey,
			w.conf.MchAPIv3Key,
		),
	}
	client, err := core.NewClient(ctx, opts...)
	if err != nil {
		return fmt.Errorf("创建微信支付客户端失败: %w", err)
	}

	certificateVisitor := downloader.MgrInstance().GetCertificateVisitor(w.conf.MchID)
	handler, err := notify.NewRSANotifyHandler(w.conf.MchAPIv3Key, verifiers.NewSHA256WithRSAVerifier(certificateVisitor))
	if err != nil {
		return fmt.Errorf("创建微信支付回调处理器失败: %w", err)
	}

	w.client = client
	w.handler = handler
	return nil
}

// NativePrepay 返回二维码链接 code_url，amount 单位为分
func (w *WechatClient) NativePrepay(ctx context.Context, outTradeNo, description string, amount int64) (string, error) {
	if w.client == nil {
		return "", ErrNotConfigured
	}
	svc := native.NativeApiService{Client: w.client}
	resp, _, err := svc.Prepay(ctx, native.PrepayRequest{
		Appid:       core.String(w.conf.AppID),
		Mchid:       core.String(w.conf.MchID),
		Description: core.String(description),
		OutTradeNo:  core.String(outTradeNo),
		NotifyUrl:   core.String(w.conf.NotifyURL),
		Amount: &native.Amount{
			Total:    core.Int64(amount),
			Currency: core.String("CNY"),
		},
	})
	if err != nil {
		return "", fmt.Errorf("微信下单失败: %w", err)
	}
	return derefString(resp.CodeUrl), nil
}

// ParseNotify 验签并解密支付回调
func (w *WechatClient) ParseNotify(ctx context.Context, req *http.Request) (*WechatTransaction, error) {
	if w.handler == nil {
		return nil, ErrNotConfigured
	}
	transaction := new(payments.Transaction)
	if _, err := w.handler.ParseNotifyRequest(ctx, req, transaction); err != nil {
		return nil, err
	}
	raw, _ := json.Marshal(transaction)
	return &WechatTransaction{
		OutTradeNo:    derefString(transaction.OutTradeNo),
		TransactionID: derefString(transaction.TransactionId),
		TradeState:    derefString(transaction.TradeState),
		Raw:           raw,
	}, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
