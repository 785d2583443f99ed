package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/pkg/response"
	"FlowHub/types"
	"context"
	"time"
)

// FreePlan 没有订阅行时使用的默认套餐
func FreePlan() *types.PlanResp {
	return &types.PlanResp{
		ID:           "free",
		Name:         "Free",
		NameZh:       "免费版",
		MaxUseCases:  10,
		MaxTutorials: 5,
		MaxBlogs:     3,
	}
}

// Activation 开通或续期一个套餐
type Activation struct {
	UserID     string
	PlanID     string
	Provider   string
	ExternalID string
	Start      time.Time
	End        time.Time
}

var _ ISubscriptionService = (*SubscriptionService)(nil)

type ISubscriptionService interface {
	Get(ctx context.Context, userID string) (*types.SubscriptionResp, error)
	Quota(ctx context.Context, userID string) (*types.QuotaResp, error)
	Activate(ctx context.Context, a *Activation) error
	UpdateExternal(ctx context.Context, externalID string, fn func(sub *models.UserSubscription)) (bool, error)
}

type SubscriptionService struct {
	SubscriptionDAO *dao.SubscriptionDAO
	PlanDAO         *dao.PlanDAO
	ViewDAO         *dao.ViewDAO
}

// Get 取用户最早创建的订阅行；每个用户只维护一行，这一行即当前订阅
func (s *SubscriptionService) Get(ctx context.Context, userID string) (*types.SubscriptionResp, error) {
	row, err := s.SubscriptionDAO.FirstWithPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return &types.SubscriptionResp{Subscription: nil, Plan: FreePlan()}, nil
	}

	resp := &types.SubscriptionResp{
		Subscription: &types.SubscriptionInfo{
			ID:                 row.ID,
			PlanID:             row.PlanID,
			Status:             row.Status,
			CurrentPeriodStart: row.CurrentPeriodStart,
			CurrentPeriodEnd:   row.CurrentPeriodEnd,
			CancelAtPeriodEnd:  row.CancelAtPeriodEnd,
			CreatedAt:          row.CreatedAt,
		},
		Plan: planFromRow(row),
	}
	return resp, nil
}

// planFromRow 套餐行缺失（LEFT JOIN 为空）时视为 Free
func planFromRow(row *models.SubscriptionWithPlan) *types.PlanResp {
	if row.PlanName == nil || row.MaxUseCases == nil || row.MaxTutorials == nil || row.MaxBlogs == nil {
		return FreePlan()
	}
	plan := &types.PlanResp{
		ID:           row.PlanID,
		Name:         *row.PlanName,
		MaxUseCases:  *row.MaxUseCases,
		MaxTutorials: *row.MaxTutorials,
		MaxBlogs:     *row.MaxBlogs,
	}
	if row.PlanNameZh != nil {
		plan.NameZh = *row.PlanNameZh
	}
	return plan
}

// Quota 本月已浏览的不同内容数与套餐上限
func (s *SubscriptionService) Quota(ctx context.Context, userID string) (*types.QuotaResp, error) {
	row, err := s.SubscriptionDAO.FirstWithPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	plan := FreePlan()
	if row != nil && row.Status != models.SubscriptionCanceled {
		plan = planFromRow(row)
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	used, err := s.ViewDAO.CountDistinctByUserSince(ctx, userID, monthStart)
	if err != nil {
		return nil, err
	}

	return &types.QuotaResp{
		Plan:      plan,
		UseCases:  quotaItem(used[models.ResourceUseCase], plan.MaxUseCases),
		Tutorials: quotaItem(used[models.ResourceTutorial], plan.MaxTutorials),
		Blogs:     quotaItem(used[models.ResourceBlog], plan.MaxBlogs),
	}, nil
}

func quotaItem(used int64, limit int) types.QuotaItem {
	if limit == models.Unlimited {
		return types.QuotaItem{Used: used, Limit: limit, Remaining: models.Unlimited}
	}
	return types.QuotaItem{Used: used, Limit: limit, Remaining: max(int64(limit)-used, 0)}
}

// Activate 写入或覆盖用户唯一的订阅行
func (s *SubscriptionService) Activate(ctx context.Context, a *Activation) error {
	if a.UserID == "" || a.PlanID == "" {
		return response.ErrMissingParameter
	}
	plan, err := s.PlanDAO.Get(ctx, a.PlanID)
	if err != nil {
		return err
	}
	if plan == nil {
		return response.InvalidParameter("Unknown plan")
	}
	start, end := a.Start, a.End
	return s.SubscriptionDAO.Save(ctx, &models.UserSubscription{
		UserID:             a.UserID,
		PlanID:             plan.ID,
		Status:             models.SubscriptionActive,
		Provider:           a.Provider,
		ExternalID:         a.ExternalID,
		CurrentPeriodStart: &start,
		CurrentPeriodEnd:   &end,
	})
}

// UpdateExternal 按支付渠道的订阅 ID 修改订阅，返回 false 表示没有对应行
func (s *SubscriptionService) UpdateExternal(ctx context.Context, externalID string, fn func(sub *models.UserSubscription)) (bool, error) {
	sub, err := s.SubscriptionDAO.GetByExternalID(ctx, externalID)
	if err != nil || sub == nil {
		return false, err
	}
	fn(sub)
	return true, s.SubscriptionDAO.Save(ctx, sub)
}
