package rocketmq

import (
	"FlowHub/config"
	"FlowHub/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
}

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 未配置 nameserver 时返回 nil
func InitProducer(cfg *config.Config) *Rocketmq {
	mq := cfg.RocketMQ
	if !mq.Enabled() {
		log.L.Info("rocketmq disabled")
		return nil
	}
	retry := mq.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNsResolver(primitive.NewPassthroughResolver(mq.NameServer)),
		producer.WithGroupName(mq.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		log.L.Error("new rocketmq producer failed", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start rocketmq producer failed", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success", zap.Strings("nameserver", mq.NameServer))

	return &Rocketmq{RocketmqProducer: p}
}

func (p *Rocketmq) SendMsg(ctx context.Context, topic string, body []byte) error {
	msg := primitive.NewMessage(topic, body)

	// 发送同步消息
	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("msg_id", res.MsgID))
	return nil
}

func (p *Rocketmq) Shutdown() error {
	return p.RocketmqProducer.Shutdown()
}
