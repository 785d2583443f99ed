package dao

import (
	"FlowHub/models"
	"context"
	"time"

	"gorm.io/gorm"
)

type ViewDAO struct {
	Repo[models.ViewRecord]
}

func NewViewDAO(db *gorm.DB) *ViewDAO {
	return &ViewDAO{Repo: NewRepo[models.ViewRecord](db)}
}

func (d *ViewDAO) CountByResource(ctx context.Context, key models.ResourceKey) (int64, error) {
	return d.Count(ctx, "resource_type = ? AND resource_id = ?", key.Type, key.ID)
}

// CountDistinctByUserSince 用户自 since 起浏览过的不同资源数，按资源类型分组
func (d *ViewDAO) CountDistinctByUserSince(ctx context.Context, userID string, since time.Time) (map[string]int64, error) {
	var rows []struct {
		ResourceType string
		Total        int64
	}
	err := d.Db.WithContext(ctx).Model(&models.ViewRecord{}).
		Select("resource_type, COUNT(DISTINCT resource_id) AS total").
		Where("user_id = ? AND created_at >= ?", userID, since).
		Group("resource_type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.ResourceType] = r.Total
	}
	return out, nil
}
