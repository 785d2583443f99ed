package dao

import (
	"FlowHub/models"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const whereUserResource = "user_id = ? AND resource_type = ? AND resource_id = ?"

// InteractionDAO 点赞、收藏这类开关型互动
type InteractionDAO[T models.Like | models.Favorite] struct {
	Repo[T]
	build func(userID string, key models.ResourceKey) *T
}

// Toggle 有则删、无则插，在一个事务内完成；返回 true 表示操作后处于已点赞/已收藏状态。
// 插入依赖 (user_id, resource_type, resource_id) 唯一索引，并发插入冲突时不会产生第二行
func (d *InteractionDAO[T]) Toggle(ctx context.Context, userID string, key models.ResourceKey) (bool, error) {
	var active bool
	err := d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where(whereUserResource, userID, key.Type, key.ID).Delete(new(T))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected > 0 {
			active = false
			return nil
		}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(d.build(userID, key)).Error; err != nil {
			return err
		}
		active = true
		return nil
	})
	return active, err
}

// CountByResource 所有用户的记录数
func (d *InteractionDAO[T]) CountByResource(ctx context.Context, key models.ResourceKey) (int64, error) {
	return d.Count(ctx, "resource_type = ? AND resource_id = ?", key.Type, key.ID)
}

func (d *InteractionDAO[T]) Exists(ctx context.Context, userID string, key models.ResourceKey) (bool, error) {
	return d.IsExist(ctx, whereUserResource, userID, key.Type, key.ID)
}

type LikeDAO struct {
	InteractionDAO[models.Like]
}

func NewLikeDAO(db *gorm.DB) *LikeDAO {
	return &LikeDAO{InteractionDAO: InteractionDAO[models.Like]{
		Repo: NewRepo[models.Like](db),
		build: func(userID string, key models.ResourceKey) *models.Like {
			return &models.Like{UserID: userID, ResourceType: key.Type, ResourceID: key.ID}
		},
	}}
}

type FavoriteDAO struct {
	InteractionDAO[models.Favorite]
}

func NewFavoriteDAO(db *gorm.DB) *FavoriteDAO {
	return &FavoriteDAO{InteractionDAO: InteractionDAO[models.Favorite]{
		Repo: NewRepo[models.Favorite](db),
		build: func(userID string, key models.ResourceKey) *models.Favorite {
			return &models.Favorite{UserID: userID, ResourceType: key.Type, ResourceID: key.ID}
		},
	}}
}
