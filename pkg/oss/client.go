package oss

import (
	"FlowHub/config"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
)

// GetOssClient 凭证从 OSS_ACCESS_KEY_ID / OSS_ACCESS_KEY_SECRET 环境变量读取
func GetOssClient(conf *config.Config) *oss.Client {
	if !conf.Oss.Enabled() {
		return nil
	}
	provider := credentials.NewEnvironmentVariableCredentialsProvider()
	cfg := oss.LoadDefaultConfig().WithCredentialsProvider(provider).
		WithRegion(conf.Oss.Region)
	if conf.Oss.Endpoint != "" {
		cfg = cfg.WithEndpoint(conf.Oss.Endpoint)
	}
	return oss.NewClient(cfg)
}
