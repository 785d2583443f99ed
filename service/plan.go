package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"context"

	"gorm.io/datatypes"
)

// DefaultPlans seed-plans 写入的套餐目录，价格单位为分
func DefaultPlans() []*models.SubscriptionPlan {
	return []*models.SubscriptionPlan{
		{
			ID: "free", Name: "Free", NameZh: "免费版",
			MaxUseCases: 10, MaxTutorials: 5, MaxBlogs: 3,
			Features: datatypes.JSON(`["basic_content"]`),
		},
		{
			ID: "pro", Name: "Pro", NameZh: "专业版",
			PriceMonthly: 2900, PriceYearly: 29000,
			MaxUseCases: 100, MaxTutorials: 50, MaxBlogs: 30,
			Features: datatypes.JSON(`["basic_content","ai_analyze","translate"]`),
		},
		{
			ID: "team", Name: "Team", NameZh: "团队版",
			PriceMonthly: 9900, PriceYearly: 99000,
			MaxUseCases: models.Unlimited, MaxTutorials: models.Unlimited, MaxBlogs: models.Unlimited,
			Features: datatypes.JSON(`["basic_content","ai_analyze","translate","priority_support"]`),
		},
	}
}

var _ IPlanService = (*PlanService)(nil)

type IPlanService interface {
	List(ctx context.Context) ([]*models.SubscriptionPlan, error)
	Seed(ctx context.Context) error
}

type PlanService struct {
	PlanDAO *dao.PlanDAO
}

func (s *PlanService) List(ctx context.Context) ([]*models.SubscriptionPlan, error) {
	return s.PlanDAO.List(ctx)
}

func (s *PlanService) Seed(ctx context.Context) error {
	return s.PlanDAO.Upsert(ctx, DefaultPlans())
}
