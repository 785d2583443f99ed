package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/pkg/log"
	"FlowHub/pkg/response"
	"FlowHub/types"
	"context"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const enrichConcurrency = 8

var activityKinds = map[string][]string{
	types.ActivityTypeAll:       {dao.ActivityLike, dao.ActivityFavorite, dao.ActivityShare},
	types.ActivityTypeLikes:     {dao.ActivityLike},
	types.ActivityTypeFavorites: {dao.ActivityFavorite},
	types.ActivityTypeShares:    {dao.ActivityShare},
}

var _ IActivityService = (*ActivityService)(nil)

type IActivityService interface {
	List(ctx context.Context, userID string, q *types.ActivityQuery) (*types.ActivityListResp, error)
}

type ActivityService struct {
	ActivityDAO *dao.ActivityDAO
	Content     IContentService
}

// NormalizeActivityQuery 填充默认值并校验 type，page 与 limit 都有上限
func NormalizeActivityQuery(q *types.ActivityQuery) error {
	if q.Type == "" {
		q.Type = types.ActivityTypeAll
	}
	if _, ok := activityKinds[q.Type]; !ok {
		return response.InvalidParameter("Invalid activity type")
	}
	if q.Page < 1 {
		q.Page = types.DefaultPage
	}
	if q.Page > types.MaxActivityPage {
		q.Page = types.MaxActivityPage
	}
	if q.Limit <= 0 {
		q.Limit = types.DefaultActivityLimit
	}
	if q.Limit > types.MaxActivityLimit {
		q.Limit = types.MaxActivityLimit
	}
	return nil
}

func (s *ActivityService) List(ctx context.Context, userID string, q *types.ActivityQuery) (*types.ActivityListResp, error) {
	if err := NormalizeActivityQuery(q); err != nil {
		return nil, err
	}

	// 多取一条用于判断 hasMore
	rows, err := s.ActivityDAO.ListByUser(ctx, userID, activityKinds[q.Type], q.Limit+1, (q.Page-1)*q.Limit)
	if err != nil {
		return nil, err
	}
	hasMore := len(rows) > q.Limit
	if hasMore {
		rows = rows[:q.Limit]
	}

	items := make([]*types.ActivityItem, len(rows))
	for i, row := range rows {
		items[i] = &types.ActivityItem{
			Action:       row.Action,
			ResourceType: row.ResourceType,
			ResourceID:   row.ResourceID,
			Platform:     row.Platform,
			CreatedAt:    row.CreatedAt,
		}
	}
	s.enrich(ctx, items)

	return &types.ActivityListResp{
		Activities: items,
		Pagination: types.Pagination{Page: q.Page, Limit: q.Limit, HasMore: hasMore},
	}, nil
}

// enrich 并发补全资源标题，单条失败时 resource 置空
func (s *ActivityService) enrich(ctx context.Context, items []*types.ActivityItem) {
	p := pool.New().WithMaxGoroutines(enrichConcurrency)
	for _, item := range items {
		p.Go(func() {
			key := models.ResourceKey{Type: item.ResourceType, ID: item.ResourceID}
			summary, err := s.Content.Summary(ctx, key)
			if err != nil {
				log.L.Warn("load activity resource failed",
					zap.String("resource_type", key.Type),
					zap.String("resource_id", key.ID),
					zap.Error(err))
				return
			}
			item.Resource = summary
		})
	}
	p.Wait()
}
