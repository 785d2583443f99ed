package service

import (
	"FlowHub/dao"
	"FlowHub/models"
	"FlowHub/types"
	"context"
)

var _ IShareService = (*ShareService)(nil)

type IShareService interface {
	// Record 写入一条分享记录，userID 可为空（匿名分享）
	Record(ctx context.Context, req *types.ShareReq, userID *string, ip string) error
}

type ShareService struct {
	ShareDAO *dao.ShareDAO
	Events   *EventPublisher
}

func (s *ShareService) Record(ctx context.Context, req *types.ShareReq, userID *string, ip string) error {
	key, err := ValidateResource(req.ResourceType, req.ResourceID)
	if err != nil {
		return err
	}
	if err := ValidatePlatform(req.Platform); err != nil {
		return err
	}

	record := &models.ShareRecord{
		UserID:       userID,
		ResourceType: key.Type,
		ResourceID:   key.ID,
		Platform:     req.Platform,
		IPAddress:    ip,
	}
	if err := s.ShareDAO.Create(ctx, record); err != nil {
		return err
	}

	ev := types.InteractionEvent{Action: "share", ResourceType: key.Type, ResourceID: key.ID, Platform: req.Platform}
	if userID != nil {
		ev.UserID = *userID
	}
	s.Events.Publish(ctx, ev)
	return nil
}
