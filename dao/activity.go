package dao

import (
	"FlowHub/models"
	"context"
	"strings"

	"gorm.io/gorm"
)

// 活动种类
const (
	ActivityLike     = "like"
	ActivityFavorite = "favorite"
	ActivityShare    = "share"
)

var activitySelect = map[string]string{
	ActivityLike:     "SELECT 'like' AS action, resource_type, resource_id, '' AS platform, created_at FROM likes WHERE user_id = ?",
	ActivityFavorite: "SELECT 'favorite' AS action, resource_type, resource_id, '' AS platform, created_at FROM favorites WHERE user_id = ?",
	ActivityShare:    "SELECT 'share' AS action, resource_type, resource_id, platform, created_at FROM share_records WHERE user_id = ?",
}

type ActivityDAO struct {
	Db *gorm.DB
}

func NewActivityDAO(db *gorm.DB) *ActivityDAO {
	return &ActivityDAO{Db: db}
}

// ListByUser 用一条 UNION ALL 在数据库侧完成全局排序与分页
func (d *ActivityDAO) ListByUser(ctx context.Context, userID string, kinds []string, limit, offset int) ([]*models.ActivityRow, error) {
	parts := make([]string, 0, len(kinds))
	args := make([]any, 0, len(kinds)+2)
	for _, kind := range kinds {
		q, ok := activitySelect[kind]
		if !ok {
			continue
		}
		parts = append(parts, q)
		args = append(args, userID)
	}
	if len(parts) == 0 {
		return nil, nil
	}

	sql := strings.Join(parts, " UNION ALL ") + " ORDER BY created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	var rows []*models.ActivityRow
	if err := d.Db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
