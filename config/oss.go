package config

type OssConfig struct {
	Endpoint  string `json:"endpoint" yaml:"endpoint"`
	Region    string `json:"region" yaml:"region"`
	Bucket    string `json:"bucket" yaml:"bucket"`
	CDNDomain string `json:"cdn_domain" yaml:"cdn_domain"`
}

func (o *OssConfig) Enabled() bool {
	return o != nil && o.Bucket != "" && o.Region != ""
}

func ProvideOssConfig(cfg *Config) *OssConfig {
	return cfg.Oss
}
