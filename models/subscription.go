package models

import (
	"time"

	"gorm.io/datatypes"
)

// Unlimited 配额不限
const Unlimited = -1

// 订阅状态
const (
	SubscriptionActive   = "active"
	SubscriptionPastDue  = "past_due"
	SubscriptionCanceled = "canceled"
)

// SubscriptionPlan 套餐目录
type SubscriptionPlan struct {
	ID            string         `gorm:"column:id;primaryKey;type:varchar(32)" json:"id"`
	Name          string         `gorm:"column:name;type:varchar(64);not null" json:"name"`
	NameZh        string         `gorm:"column:name_zh;type:varchar(64)" json:"name_zh"`
	PriceMonthly  int64          `gorm:"column:price_monthly;not null;default:0" json:"price_monthly"` // 分
	PriceYearly   int64          `gorm:"column:price_yearly;not null;default:0" json:"price_yearly"` // 分
	MaxUseCases   int            `gorm:"column:max_use_cases;not null" json:"max_use_cases"`
	MaxTutorials  int            `gorm:"column:max_tutorials;not null" json:"max_tutorials"`
	MaxBlogs      int            `gorm:"column:max_blogs;not null" json:"max_blogs"`
	Features      datatypes.JSON `gorm:"column:features" json:"features"`
	StripePriceID string         `gorm:"column:stripe_price_id;type:varchar(64)" json:"stripe_price_id"`
	CreatedAt     time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (SubscriptionPlan) TableName() string { return "subscription_plans" }

// UserSubscription 用户订阅，每个用户只维护一行
type UserSubscription struct {
	ID                 uint64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID             string     `gorm:"column:user_id;type:varchar(64);not null;index" json:"user_id"`
	PlanID             string     `gorm:"column:plan_id;type:varchar(32);not null" json:"plan_id"`
	Status             string     `gorm:"column:status;type:varchar(16);not null" json:"status"`
	Provider           string     `gorm:"column:provider;type:varchar(16)" json:"provider"` // stripe / wechat
	ExternalID         string     `gorm:"column:external_id;type:varchar(128);index" json:"external_id"`
	CurrentPeriodStart *time.Time `gorm:"column:current_period_start" json:"current_period_start"`
	CurrentPeriodEnd   *time.Time `gorm:"column:current_period_end" json:"current_period_end"`
	CancelAtPeriodEnd  bool       `gorm:"column:cancel_at_period_end;not null;default:false" json:"cancel_at_period_end"`
	CreatedAt          time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at" json:"updated_at"`
}

func (UserSubscription) TableName() string { return "user_subscriptions" }

// SubscriptionWithPlan user_subscriptions LEFT JOIN subscription_plans 的结果行
type SubscriptionWithPlan struct {
	UserSubscription
	PlanName     *string `gorm:"column:plan_name"`
	PlanNameZh   *string `gorm:"column:plan_name_zh"`
	MaxUseCases  *int    `gorm:"column:max_use_cases"`
	MaxTutorials *int    `gorm:"column:max_tutorials"`
	MaxBlogs     *int    `gorm:"column:max_blogs"`
}
