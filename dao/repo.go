package dao

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Repo 单表通用操作
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, item *T) error {
	return r.Db.WithContext(ctx).Create(item).Error
}

// FindOne 未找到返回 nil, nil
func (r *Repo[T]) FindOne(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var one int
	err := r.Db.WithContext(ctx).Model(new(T)).Select("1").Where(where, args...).Limit(1).Scan(&one).Error
	if err != nil {
		return false, err
	}
	return one == 1, nil
}

func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var total int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Count(&total).Error
	return total, err
}

func (r *Repo[T]) UpdateByWhere(ctx context.Context, data map[string]any, where string, args ...any) (int64, error) {
	res := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Updates(data)
	return res.RowsAffected, res.Error
}

func (r *Repo[T]) DeleteByWhere(ctx context.Context, where string, args ...any) (int64, error) {
	res := r.Db.WithContext(ctx).Where(where, args...).Delete(new(T))
	return res.RowsAffected, res.Error
}
