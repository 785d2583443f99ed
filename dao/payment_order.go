package dao

import (
	"FlowHub/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PaymentOrderDAO struct {
	Repo[models.PaymentOrder]
}

func NewPaymentOrderDAO(db *gorm.DB) *PaymentOrderDAO {
	return &PaymentOrderDAO{Repo: NewRepo[models.PaymentOrder](db)}
}

func (d *PaymentOrderDAO) GetByOrderSn(ctx context.Context, orderSn string) (*models.PaymentOrder, error) {
	return d.FindOne(ctx, "order_sn = ?", orderSn)
}

// MarkPaid 仅待支付订单可以置为已支付，返回 false 表示重复通知
func (d *PaymentOrderDAO) MarkPaid(ctx context.Context, orderSn, transactionID string, raw []byte, paidAt time.Time) (bool, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{
		"status":         models.OrderStatusPaid,
		"transaction_id": transactionID,
		"notify_raw":     datatypes.JSON(raw),
		"paid_at":        paidAt,
	}, "order_sn = ? AND status = ?", orderSn, models.OrderStatusPending)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
