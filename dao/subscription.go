package dao

import (
	"FlowHub/models"
	"context"

	"gorm.io/gorm"
)

type SubscriptionDAO struct {
	Repo[models.UserSubscription]
}

func NewSubscriptionDAO(db *gorm.DB) *SubscriptionDAO {
	return &SubscriptionDAO{Repo: NewRepo[models.UserSubscription](db)}
}

// FirstWithPlan 用户最早创建的订阅行及其套餐，没有订阅返回 nil
func (d *SubscriptionDAO) FirstWithPlan(ctx context.Context, userID string) (*models.SubscriptionWithPlan, error) {
	var rows []*models.SubscriptionWithPlan
	err := d.Db.WithContext(ctx).
		Table("user_subscriptions AS us").
		Select("us.*, p.name AS plan_name, p.name_zh AS plan_name_zh, p.max_use_cases, p.max_tutorials, p.max_blogs").
		Joins("LEFT JOIN subscription_plans AS p ON p.id = us.plan_id").
		Where("us.user_id = ?", userID).
		Order("us.created_at ASC, us.id ASC").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Save 每个用户只维护一行订阅：已有则原地更新，否则新建
func (d *SubscriptionDAO) Save(ctx context.Context, sub *models.UserSubscription) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current models.UserSubscription
		err := tx.Where("user_id = ?", sub.UserID).Order("created_at ASC, id ASC").Limit(1).Find(&current).Error
		if err != nil {
			return err
		}
		if current.ID == 0 {
			return tx.Create(sub).Error
		}
		sub.ID = current.ID
		sub.CreatedAt = current.CreatedAt
		return tx.Save(sub).Error
	})
}

func (d *SubscriptionDAO) GetByExternalID(ctx context.Context, externalID string) (*models.UserSubscription, error) {
	return d.FindOne(ctx, "external_id = ?", externalID)
}
