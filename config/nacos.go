package config

// NacosConfig 远端配置中心，DataID 为空表示只使用本地文件
type NacosConfig struct {
	Address   string `yaml:"address"`
	Port      uint64 `yaml:"port"`
	Namespace string `yaml:"namespace"`
	Group     string `yaml:"group"`
	DataID    string `yaml:"data_id"`
	User      string `yaml:"user"`
	Password  string `yaml:"password"`
	TimeoutMs uint64 `yaml:"timeout_ms"`
	LogLevel  string `yaml:"log_level"`
}

func (n *NacosConfig) Enabled() bool {
	return n != nil && n.Address != "" && n.DataID != ""
}
