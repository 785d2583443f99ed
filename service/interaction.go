package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/types"
	"context"
)

var _ IInteractionService = (*InteractionService)(nil)

type IInteractionService interface {
	// ToggleLike 返回 liked / unliked
	ToggleLike(ctx context.Context, userID string, key models.ResourceKey) (string, error)
	LikeStatus(ctx context.Context, key models.ResourceKey, userID string) (*types.LikeStatusResp, error)
	// ToggleFavorite 返回 favorited / unfavorited
	ToggleFavorite(ctx context.Context, userID string, key models.ResourceKey) (string, error)
	FavoriteStatus(ctx context.Context, key models.ResourceKey, userID string) (*types.FavoriteStatusResp, error)
}

type InteractionService struct {
	LikeDAO     *dao.LikeDAO
	FavoriteDAO *dao.FavoriteDAO
	Events      *EventPublisher
}

func (s *InteractionService) ToggleLike(ctx context.Context, userID string, key models.ResourceKey) (string, error) {
	liked, err := s.LikeDAO.Toggle(ctx, userID, key)
	if err != nil {
		return "", err
	}
	action := "unliked"
	if liked {
		action = "liked"
	}
	s.publish(ctx, liked, "like", userID, key)
	return action, nil
}

// LikeStatus userID 为空时 isLiked 恒为 false
func (s *InteractionService) LikeStatus(ctx context.Context, key models.ResourceKey, userID string) (*types.LikeStatusResp, error) {
	count, err := s.LikeDAO.CountByResource(ctx, key)
	if err != nil {
		return nil, err
	}
	resp := &types.LikeStatusResp{Count: count}
	if userID != "" {
		if resp.IsLiked, err = s.LikeDAO.Exists(ctx, userID, key); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *InteractionService) ToggleFavorite(ctx context.Context, userID string, key models.ResourceKey) (string, error) {
	favorited, err := s.FavoriteDAO.Toggle(ctx, userID, key)
	if err != nil {
		return "", err
	}
	action := "unfavorited"
	if favorited {
		action = "favorited"
	}
	s.publish(ctx, favorited, "favorite", userID, key)
	return action, nil
}

func (s *InteractionService) FavoriteStatus(ctx context.Context, key models.ResourceKey, userID string) (*types.FavoriteStatusResp, error) {
	count, err := s.FavoriteDAO.CountByResource(ctx, key)
	if err != nil {
		return nil, err
	}
	resp := &types.FavoriteStatusResp{Count: count}
	if userID != "" {
		if resp.IsFavorited, err = s.FavoriteDAO.Exists(ctx, userID, key); err != nil {
			return nil, err
		}
	}
	return resp, nil
}

func (s *InteractionService) publish(ctx context.Context, active bool, verb, userID string, key models.ResourceKey) {
	action := verb
	if !active {
		action = "un" + verb
	}
	s.Events.Publish(ctx, types.InteractionEvent{
		Action:       action,
		UserID:       userID,
		ResourceType: key.Type,
		ResourceID:   key.ID,
	})
}
