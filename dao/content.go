package dao

import (
	"FlowHub/models"
	"context"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContentDAO 教程、用例、博客共用的查询
type ContentDAO[T models.Content] struct {
	Repo[T]
}

func NewContentDAO[T models.Content](db *gorm.DB) *ContentDAO[T] {
	return &ContentDAO[T]{Repo: NewRepo[T](db)}
}

func NewTutorialDAO(db *gorm.DB) *ContentDAO[models.Tutorial] {
	return NewContentDAO[models.Tutorial](db)
}

func NewUseCaseDAO(db *gorm.DB) *ContentDAO[models.UseCase] {
	return NewContentDAO[models.UseCase](db)
}

func NewBlogDAO(db *gorm.DB) *ContentDAO[models.Blog] {
	return NewContentDAO[models.Blog](db)
}

// ListPublished 已发布内容按发布时间倒序分页，tag 非空时按标签过滤
func (d *ContentDAO[T]) ListPublished(ctx context.Context, tag string, offset, limit int) ([]*T, int64, error) {
	q := d.Db.WithContext(ctx).Model(new(T)).Where("status = ?", models.ContentPublished)
	if tag != "" {
		q = q.Where(datatypes.JSONArrayQuery("tags").Contains(tag))
	}
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*T
	err := q.Order("published_at DESC").Order("id DESC").Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// ListAll 后台列表，包含草稿
func (d *ContentDAO[T]) ListAll(ctx context.Context, offset, limit int) ([]*T, int64, error) {
	q := d.Db.WithContext(ctx).Model(new(T))
	var total int64
	if err := q.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var items []*T
	err := q.Order("updated_at DESC").Offset(offset).Limit(limit).Find(&items).Error
	return items, total, err
}

func (d *ContentDAO[T]) GetPublishedBySlug(ctx context.Context, slug string) (*T, error) {
	return d.FindOne(ctx, "slug = ? AND status = ?", slug, models.ContentPublished)
}

func (d *ContentDAO[T]) GetByID(ctx context.Context, id string) (*T, error) {
	return d.FindOne(ctx, "id = ?", id)
}

// Summary 活动流需要的 id、标题
func (d *ContentDAO[T]) Summary(ctx context.Context, id string) (*models.ResourceSummary, error) {
	var rows []*models.ResourceSummary
	err := d.Db.WithContext(ctx).Model(new(T)).Select("id, title, title_zh").Where("id = ?", id).Limit(1).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// Search 标题中英文模糊匹配
func (d *ContentDAO[T]) Search(ctx context.Context, keyword string, limit int) ([]*T, error) {
	like := "%" + keyword + "%"
	var items []*T
	err := d.Db.WithContext(ctx).
		Where("status = ?", models.ContentPublished).
		Where(d.Db.Where("title LIKE ?", like).Or("title_zh LIKE ?", like)).
		Order("published_at DESC").
		Limit(limit).
		Find(&items).Error
	return items, err
}

func (d *ContentDAO[T]) Update(ctx context.Context, item *T) error {
	return d.Db.WithContext(ctx).Save(item).Error
}

func (d *ContentDAO[T]) Publish(ctx context.Context, id string, at time.Time) (bool, error) {
	n, err := d.UpdateByWhere(ctx, map[string]any{
		"status":       models.ContentPublished,
		"published_at": at,
	}, "id = ?", id)
	return n > 0, err
}

func (d *ContentDAO[T]) Delete(ctx context.Context, id string) (bool, error) {
	n, err := d.DeleteByWhere(ctx, "id = ?", id)
	return n > 0, err
}
