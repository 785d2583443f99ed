package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const webhookTTL = 72 * time.Hour

// WebhookDedup 记录已处理的 webhook 投递 ID，未配置 redis 时不做去重
type WebhookDedup struct {
	redis *redis.Client
}

func NewWebhookDedup(rds *redis.Client) *WebhookDedup {
	return &WebhookDedup{redis: rds}
}

func (w *WebhookDedup) key(source, id string) string {
	return fmt.Sprintf("flowhub:webhook:%s:%s", source, id)
}

// Seen 是否已处理过该投递
func (w *WebhookDedup) Seen(ctx context.Context, source, id string) (bool, error) {
	if w.redis == nil || id == "" {
		return false, nil
	}
	n, err := w.redis.Exists(ctx, w.key(source, id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Mark 处理成功后登记
func (w *WebhookDedup) Mark(ctx context.Context, source, id string) error {
	if w.redis == nil || id == "" {
		return nil
	}
	return w.redis.Set(ctx, w.key(source, id), 1, webhookTTL).Err()
}
