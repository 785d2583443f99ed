package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App             *App             `json:"app" yaml:"app"`
	Server          *Server          `json:"server" yaml:"server"`
	Database        *Database        `json:"database" yaml:"database"`
	Redis           *Redis           `json:"redis" yaml:"redis"`
	Jwt             *Jwt             `json:"jwt" yaml:"jwt"`
	Identity        *Identity        `json:"identity" yaml:"identity"`
	Stripe          *StripeConfig    `json:"stripe" yaml:"stripe"`
	WechatPayConfig *WechatPayConfig `json:"wechat_pay" yaml:"wechat_pay"`
	Oss             *OssConfig       `json:"oss" yaml:"oss"`
	RocketMQ        *RocketMQConfig  `json:"rocketmq" yaml:"rocketmq"`
	Nacos           *NacosConfig     `json:"nacos" yaml:"nacos"`
	AI              *AIConfig        `json:"ai" yaml:"ai"`
	Translate       *TranslateConfig `json:"translate" yaml:"translate"`
	Site            *Site            `json:"site" yaml:"site"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// Site 站点信息，用于拼接支付回跳地址等
type Site struct {
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url" yaml:"url"`
}

func New(filename string) *Config {
	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	conf, err := Parse(content)
	if err != nil {
		panic(fmt.Sprintf("解析 %s 读取错误: %v", filename, err))
	}
	return conf
}

// Parse 解析 yaml 配置，支持 ${ENV} 占位符
func Parse(content []byte) (*Config, error) {
	var conf Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(content))), &conf); err != nil {
		return nil, err
	}
	conf.fillDefaults()
	return &conf, nil
}

// Overlay 用远端配置覆盖本地配置，未出现的字段保持不变
func (c *Config) Overlay(content string) error {
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(content)), c); err != nil {
		return err
	}
	c.fillDefaults()
	return nil
}

func (c *Config) fillDefaults() {
	if c.App == nil {
		c.App = &App{Env: "dev"}
	}
	if c.Server == nil {
		c.Server = &Server{}
	}
	if c.Server.Http == 0 {
		c.Server.Http = 8080
	}
	if c.Database == nil {
		c.Database = &Database{Driver: DriverSQLite, Name: "flowhub.db"}
	}
	if c.Redis == nil {
		c.Redis = &Redis{}
	}
	if c.Jwt == nil {
		c.Jwt = &Jwt{}
	}
	if c.WechatPayConfig == nil {
		c.WechatPayConfig = &WechatPayConfig{}
	}
	if c.Oss == nil {
		c.Oss = &OssConfig{}
	}
	if c.RocketMQ == nil {
		c.RocketMQ = &RocketMQConfig{}
	}
	if c.Nacos == nil {
		c.Nacos = &NacosConfig{}
	}
	if c.Identity == nil {
		c.Identity = &Identity{}
	}
	if c.Stripe == nil {
		c.Stripe = &StripeConfig{}
	}
	if c.AI == nil {
		c.AI = &AIConfig{}
	}
	if c.AI.Model == "" {
		c.AI.Model = "gpt-4o-mini"
	}
	if c.Translate == nil {
		c.Translate = &TranslateConfig{}
	}
	if c.Site == nil {
		c.Site = &Site{Name: "FlowHub", URL: "http://localhost:3000"}
	}
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
