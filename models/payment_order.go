package models

import (
	"time"

	"gorm.io/datatypes"
)

// 订单状态
const (
	OrderStatusPending = 0
	OrderStatusPaid    = 1
	OrderStatusClosed  = 2
)

// PaymentOrder 微信支付订单
type PaymentOrder struct {
	ID            int64          `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderSn       string         `gorm:"column:order_sn;type:varchar(64);uniqueIndex" json:"order_sn"`
	UserID        string         `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
	PlanID        string         `gorm:"column:plan_id;type:varchar(32);not null" json:"plan_id"`
	IsYearly      bool           `gorm:"column:is_yearly;not null;default:false" json:"is_yearly"`
	Amount        int64          `gorm:"column:amount;not null" json:"amount"` // 分
	Status        int            `gorm:"column:status;not null;default:0" json:"status"`
	TransactionID string         `gorm:"column:transaction_id;type:varchar(64)" json:"transaction_id"`
	NotifyRaw     datatypes.JSON `gorm:"column:notify_raw" json:"-"`
	PaidAt        *time.Time     `gorm:"column:paid_at" json:"paid_at"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (PaymentOrder) TableName() string { return "payment_orders" }
