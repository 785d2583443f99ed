package dao

import (
	"FlowHub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PlanDAO struct {
	Repo[models.SubscriptionPlan]
}

func NewPlanDAO(db *gorm.DB) *PlanDAO {
	return &PlanDAO{Repo: NewRepo[models.SubscriptionPlan](db)}
}

func (d *PlanDAO) Get(ctx context.Context, id string) (*models.SubscriptionPlan, error) {
	return d.FindOne(ctx, "id = ?", id)
}

// GetByName 按套餐英文名查找，大小写不敏感
func (d *PlanDAO) GetByName(ctx context.Context, name string) (*models.SubscriptionPlan, error) {
	return d.FindOne(ctx, "LOWER(name) = LOWER(?)", name)
}

func (d *PlanDAO) List(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	var plans []*models.SubscriptionPlan
	err := d.Db.WithContext(ctx).Order("price_monthly ASC").Find(&plans).Error
	return plans, err
}

// Upsert 按 id 覆盖写入，seed-plans 可重复执行
func (d *PlanDAO) Upsert(ctx context.Context, plans []*models.SubscriptionPlan) error {
	if len(plans) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&plans).Error
}
