package dao

import (
	"FlowHub/models"
	"context"

	"gorm.io/gorm"
)

type ShareDAO struct {
	Repo[models.ShareRecord]
}

func NewShareDAO(db *gorm.DB) *ShareDAO {
	return &ShareDAO{Repo: NewRepo[models.ShareRecord](db)}
}

func (d *ShareDAO) CountByResource(ctx context.Context, key models.ResourceKey) (int64, error) {
	return d.Count(ctx, "resource_type = ? AND resource_id = ?", key.Type, key.ID)
}
