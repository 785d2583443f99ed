package dao

import (
	"FlowHub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserDAO struct {
	Repo[models.User]
}

func NewUserDAO(db *gorm.DB) *UserDAO {
	return &UserDAO{Repo: NewRepo[models.User](db)}
}

// UpsertByProvider 以 (provider, provider_id) 为键写入用户，已存在时刷新资料但保留 is_admin
func (d *UserDAO) UpsertByProvider(ctx context.Context, user *models.User) error {
	return d.Db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "provider"}, {Name: "provider_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"email", "full_name", "avatar_url", "updated_at"}),
	}).Create(user).Error
}

func (d *UserDAO) GetByProviderID(ctx context.Context, provider, providerID string) (*models.User, error) {
	return d.FindOne(ctx, "provider = ? AND provider_id = ?", provider, providerID)
}

// IsAdmin 会话里的用户 ID 即身份提供方的 provider_id
func (d *UserDAO) IsAdmin(ctx context.Context, providerID string) (bool, error) {
	return d.IsExist(ctx, "provider = ? AND provider_id = ? AND is_admin = ?", models.ProviderExternal, providerID, true)
}
