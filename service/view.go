package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/pkg/utils"
	"FlowHub/types"
	"context"
)

var _ IViewService = (*ViewService)(nil)

type IViewService interface {
	Record(ctx context.Context, key models.ResourceKey, userID *string, ip string) error
	Count(ctx context.Context, key models.ResourceKey) (int64, error)
}

type ViewService struct {
	ViewDAO *dao.ViewDAO
	Events  *EventPublisher
}

// Record 浏览日志只保存 IP 哈希
func (s *ViewService) Record(ctx context.Context, key models.ResourceKey, userID *string, ip string) error {
	record := &models.ViewRecord{
		UserID:       userID,
		ResourceType: key.Type,
		ResourceID:   key.ID,
		IPHash:       utils.HashIP(ip),
	}
	if err := s.ViewDAO.Create(ctx, record); err != nil {
		return err
	}

	ev := types.InteractionEvent{Action: "view", ResourceType: key.Type, ResourceID: key.ID}
	if userID != nil {
		ev.UserID = *userID
	}
	s.Events.Publish(ctx, ev)
	return nil
}

func (s *ViewService) Count(ctx context.Context, key models.ResourceKey) (int64, error) {
	return s.ViewDAO.CountByResource(ctx, key)
}
