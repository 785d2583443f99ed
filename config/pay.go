package config

type WechatPayConfig struct {
	AppID                      string `yaml:"app_id"`                        // 应用ID
	MchID                      string `yaml:"mch_id"`                        // 商户号
	MchCertificateSerialNumber string `yaml:"mch_certificate_serial_number"` // 商户证书序列号
	MchAPIv3Key                string `yaml:"mch_apiv3_key"`                 // APIv3密钥
	MchPrivateKeyPath          string `yaml:"mch_private_key_path"`          // 商户私钥文件路径
	NotifyURL                  string `yaml:"notify_url"`                    // 支付回调URL
	HashSalt                   string `yaml:"hash_salt"`                     // 订单号混淆盐
}

func (w *WechatPayConfig) Enabled() bool {
	return w != nil && w.MchID != "" && w.MchPrivateKeyPath != ""
}

func ProvideWechatPayConfig(cfg *Config) *WechatPayConfig {
	return cfg.WechatPayConfig
}

// StripeConfig Stripe 订阅配置
type StripeConfig struct {
	SecretKey     string `yaml:"secret_key"`
	WebhookSecret string `yaml:"webhook_secret"`
	SuccessPath   string `yaml:"success_path"`
	CancelPath    string `yaml:"cancel_path"`
}
