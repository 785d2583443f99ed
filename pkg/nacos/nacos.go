package nacos

import (
	"FlowHub/config"
	"FlowHub/pkg/log"

	"github.com/nacos-group/nacos-sdk-go/v2/clients"
	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"
	"go.uber.org/zap"
)

// LoadRemoteConfig 从 Nacos 配置中心拉取 yaml 文本
func LoadRemoteConfig(cfg *config.NacosConfig) (string, error) {
	sc := []constant.ServerConfig{
		*constant.NewServerConfig(cfg.Address, cfg.Port),
	}
	timeout := cfg.TimeoutMs
	if timeout == 0 {
		timeout = 5000
	}
	cc := constant.ClientConfig{
		NamespaceId:         cfg.Namespace,
		TimeoutMs:           timeout,
		NotLoadCacheAtStart: true,
		LogDir:              "/tmp/nacos/log",
		CacheDir:            "/tmp/nacos/cache",
		LogLevel:            cfg.LogLevel,
		Username:            cfg.User,
		Password:            cfg.Password,
	}

	cli, err := clients.NewConfigClient(vo.NacosClientParam{
		ClientConfig:  &cc,
		ServerConfigs: sc,
	})
	if err != nil {
		return "", err
	}
	group := cfg.Group
	if group == "" {
		group = "DEFAULT_GROUP"
	}
	content, err := cli.GetConfig(vo.ConfigParam{DataId: cfg.DataID, Group: group})
	if err != nil {
		return "", err
	}
	log.L.Info("nacos config loaded", zap.String("data_id", cfg.DataID), zap.String("group", group))
	return content, nil
}
