package config

type RocketMQConfig struct {
	NameServer []string `yaml:"nameserver"`
	Topic      string   `yaml:"topic"`

	Producer Producer `yaml:"producer"`
}

type Producer struct {
	Group string `yaml:"group"`
	Retry int    `yaml:"retry"`
}

func (r *RocketMQConfig) Enabled() bool {
	return r != nil && len(r.NameServer) > 0 && r.Topic != ""
}

func ProvideRocketMQConfig(cfg *Config) *RocketMQConfig {
	return cfg.RocketMQ
}
