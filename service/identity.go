package service

import (
	"FlowHub/config"
	"FlowHub/dao"
	"FlowHub/dao/cache"
	"FlowHub/models"
	"FlowHub/pkg/log"
	"FlowHub/pkg/response"
	"context"
	"net/http"
	"strings"

	svix "github.com/svix/svix-webhooks/go"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const webhookSourceIdentity = "identity"

var svixHeaders = []string{"svix-id", "svix-timestamp", "svix-signature"}

var _ IIdentityService = (*IdentityService)(nil)

type IIdentityService interface {
	// HandleWebhook 验签并处理身份提供方事件
	HandleWebhook(ctx context.Context, header http.Header, body []byte) error
}

type IdentityService struct {
	Config  *config.Config
	UserDAO *dao.UserDAO
	Dedup   *cache.WebhookDedup
}

func (s *IdentityService) HandleWebhook(ctx context.Context, header http.Header, body []byte) error {
	secret := s.Config.Identity.WebhookSecret
	if secret == "" {
		return response.ErrConfigurationMissing
	}
	for _, h := range svixHeaders {
		if header.Get(h) == "" {
			return response.NewError(http.StatusBadRequest, "Missing svix headers")
		}
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		log.L.Error("invalid identity webhook secret", zap.Error(err))
		return response.ErrConfigurationMissing
	}
	if err := wh.Verify(body, header); err != nil {
		log.L.Warn("identity webhook signature verification failed", zap.Error(err))
		return response.ErrSignatureVerificationFailed
	}

	msgID := header.Get("svix-id")
	if seen, err := s.Dedup.Seen(ctx, webhookSourceIdentity, msgID); err != nil {
		log.L.Warn("check webhook dedup failed", zap.Error(err))
	} else if seen {
		log.L.Info("identity webhook already processed", zap.String("svix_id", msgID))
		return nil
	}

	eventType := gjson.GetBytes(body, "type").String()
	data := gjson.GetBytes(body, "data")
	switch eventType {
	case "user.created", "user.updated":
		if err := s.upsertUser(ctx, data); err != nil {
			return err
		}
	case "user.deleted":
		log.L.Info("identity user deleted", zap.String("provider_id", data.Get("id").String()))
	default:
		log.L.Info("identity webhook ignored", zap.String("type", eventType))
	}

	if err := s.Dedup.Mark(ctx, webhookSourceIdentity, msgID); err != nil {
		log.L.Warn("mark webhook processed failed", zap.Error(err))
	}
	return nil
}

func (s *IdentityService) upsertUser(ctx context.Context, data gjson.Result) error {
	email := PrimaryEmail(data)
	if email == "" {
		return response.ErrNoEmailFound
	}

	name := strings.TrimSpace(data.Get("first_name").String() + " " + data.Get("last_name").String())
	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user := &models.User{
		Email:      email,
		FullName:   name,
		AvatarURL:  data.Get("image_url").String(),
		Provider:   models.ProviderExternal,
		ProviderID: data.Get("id").String(),
	}
	if user.ProviderID == "" {
		return response.ErrMissingParameter
	}
	if err := s.UserDAO.UpsertByProvider(ctx, user); err != nil {
		return err
	}
	log.L.Info("identity user synced", zap.String("provider_id", user.ProviderID))
	return nil
}

// PrimaryEmail 按 primary_email_address_id 找主邮箱
func PrimaryEmail(data gjson.Result) string {
	primaryID := data.Get("primary_email_address_id").String()
	if primaryID == "" {
		return ""
	}
	for _, addr := range data.Get("email_addresses").Array() {
		if addr.Get("id").String() == primaryID {
			return addr.Get("email_address").String()
		}
	}
	return ""
}
