package config

// Jwt 会话令牌校验配置
// PublicKey 为身份提供方的 RS256 PEM 公钥；为空时使用 Secret 做 HS256 校验
type Jwt struct {
	Secret    string `json:"secret" yaml:"secret"`
	PublicKey string `json:"public_key" yaml:"public_key"`
	Issuer    string `json:"issuer" yaml:"issuer"`
}

// Identity 身份提供方 webhook 配置
type Identity struct {
	WebhookSecret string `json:"webhook_secret" yaml:"webhook_secret"`
}
