package service

import (
	"FlowHub/config"
	"FlowHub/pkg/log"
	"FlowHub/pkg/rocketmq"
	"FlowHub/types"
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"
)

// EventPublisher 互动事件投递，未配置 RocketMQ 时只丢弃
type EventPublisher struct {
	mq    *rocketmq.Rocketmq
	topic string
}

func NewEventPublisher(mq *rocketmq.Rocketmq, conf *config.Config) *EventPublisher {
	p := &EventPublisher{mq: mq}
	if conf.RocketMQ != nil {
		p.topic = conf.RocketMQ.Topic
	}
	return p
}

// Publish 投递失败只记日志，不影响请求结果
func (p *EventPublisher) Publish(ctx context.Context, ev types.InteractionEvent) {
	if p == nil || p.mq == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		log.L.Error("marshal interaction event failed", zap.Error(err))
		return
	}
	if err := p.mq.SendMsg(ctx, p.topic, body); err != nil {
		log.L.Error("publish interaction event failed",
			zap.String("action", ev.Action),
			zap.String("resource_id", ev.ResourceID),
			zap.Error(err))
	}
}
