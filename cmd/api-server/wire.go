//go:build wireinject
// +build wireinject

package main

import (
	"FlowHub/config"
	"FlowHub/dao"
	"FlowHub/handler"
	"FlowHub/pkg/client"
	"FlowHub/pkg/database"
	"FlowHub/pkg/jwt"
	"FlowHub/pkg/oss"
	"FlowHub/pkg/rocketmq"
	"FlowHub/pkg/server"
	"FlowHub/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) (*server.AppProvider, error) {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		config.ProvideOssConfig,
		oss.GetOssClient,
		rocketmq.InitProducer,
		jwt.NewVerifier,
		server.NewGinEngine,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		handler.ProviderSet,
	)
	return nil, nil
}
