package main

import (
	"FlowHub/config"
	"FlowHub/dao"
	"FlowHub/pkg/database"
	"FlowHub/pkg/log"
	"FlowHub/pkg/nacos"
	"FlowHub/pkg/server"
	"FlowHub/service"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func loadConfig() *config.Config {
	// .env 不存在时忽略
	_ = godotenv.Load()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	path := fmt.Sprintf("configs/config.%s.yaml", env)
	cfg := config.New(path)

	if cfg.Nacos.Enabled() {
		content, err := nacos.LoadRemoteConfig(cfg.Nacos)
		if err != nil {
			log.L.Warn("load nacos config failed, use local config", zap.Error(err))
		} else if err := cfg.Overlay(content); err != nil {
			log.L.Fatal("parse nacos config", zap.Error(err))
		}
	}
	log.SetDebug(cfg.Debug())
	return cfg
}

func main() {
	cfg := loadConfig()
	cliApp := &cli.App{
		Name:  "api-server",
		Usage: "FlowHub api server",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start http server",
				Action: func(ctx *cli.Context) error {
					appProvider, err := InitServer(cfg)
					if err != nil {
						return err
					}
					return server.Run(ctx, appProvider)
				},
			},
			{
				Name:  "migrate",
				Usage: "auto migrate database schema",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					if err := database.Migrate(db); err != nil {
						return err
					}
					log.L.Info("migrate done")
					return nil
				},
			},
			{
				Name:  "seed-plans",
				Usage: "write the subscription plan catalog",
				Action: func(ctx *cli.Context) error {
					db, err := database.NewDB(cfg)
					if err != nil {
						return err
					}
					svc := &service.PlanService{PlanDAO: dao.NewPlanDAO(db)}
					if err := svc.Seed(ctx.Context); err != nil {
						return err
					}
					log.L.Info("seed plans done", zap.Int("count", len(service.DefaultPlans())))
					return nil
				},
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		log.L.Fatal("failed to start server", zap.Error(err))
	}
}
