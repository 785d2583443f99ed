package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/types"
	"context"
)

var _ IAdminService = (*AdminService)(nil)

type IAdminService interface {
	// IsAdmin 会话用户是否为管理员
	IsAdmin(ctx context.Context, userID string) (bool, error)
	Stats(ctx context.Context) (*types.StatsResp, error)
}

type AdminService struct {
	UserDAO     *dao.UserDAO
	TutorialDAO *dao.ContentDAO[models.Tutorial]
	UseCaseDAO  *dao.ContentDAO[models.UseCase]
	BlogDAO     *dao.ContentDAO[models.Blog]
	LikeDAO     *dao.LikeDAO
	FavoriteDAO *dao.FavoriteDAO
	ShareDAO    *dao.ShareDAO
	ViewDAO     *dao.ViewDAO
}

func (s *AdminService) IsAdmin(ctx context.Context, userID string) (bool, error) {
	return s.UserDAO.IsAdmin(ctx, userID)
}

// Stats 后台首页计数
func (s *AdminService) Stats(ctx context.Context) (*types.StatsResp, error) {
	resp := &types.StatsResp{}
	counters := []struct {
		dst   *int64
		count func(ctx context.Context, where string, args ...any) (int64, error)
	}{
		{&resp.Users, s.UserDAO.Count},
		{&resp.Tutorials, s.TutorialDAO.Count},
		{&resp.UseCases, s.UseCaseDAO.Count},
		{&resp.Blogs, s.BlogDAO.Count},
		{&resp.Likes, s.LikeDAO.Count},
		{&resp.Favorites, s.FavoriteDAO.Count},
		{&resp.Shares, s.ShareDAO.Count},
		{&resp.Views, s.ViewDAO.Count},
	}
	fns := make([]func(ctx context.Context) error, 0, len(counters))
	for _, c := range counters {
		fns = append(fns, func(ctx context.Context) (err error) {
			*c.dst, err = c.count(ctx, "1 = 1")
			return
		})
	}
	if err := fanOut(ctx, fns...); err != nil {
		return nil, err
	}
	return resp, nil
}
