package config

// AIConfig OpenAI 兼容接口配置
type AIConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	Model   string `yaml:"model"`
}

// TranslateConfig Google Translate 配置，APIKey 为空时回退到大模型翻译
type TranslateConfig struct {
	GoogleAPIKey string `yaml:"google_api_key"`
}
