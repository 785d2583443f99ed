package models

import (
	"FlowHub/pkg/snowflake"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// 内容状态
const (
	ContentDraft     = "draft"
	ContentPublished = "published"
)

// ContentBase 三类内容共有的中英双语字段
type ContentBase struct {
	ID          string         `gorm:"column:id;primaryKey;type:varchar(32)" json:"id"` // 雪花算法ID
	Slug        string         `gorm:"column:slug;type:varchar(191);not null;uniqueIndex" json:"slug"`
	Title       string         `gorm:"column:title;type:varchar(255);not null" json:"title"`
	TitleZh     string         `gorm:"column:title_zh;type:varchar(255)" json:"title_zh"`
	Summary     string         `gorm:"column:summary;type:text" json:"summary"`
	SummaryZh   string         `gorm:"column:summary_zh;type:text" json:"summary_zh"`
	Body        string         `gorm:"column:body;type:text" json:"body"`
	BodyZh      string         `gorm:"column:body_zh;type:text" json:"body_zh"`
	CoverURL    string         `gorm:"column:cover_url;type:varchar(512)" json:"cover_url"`
	Tags        datatypes.JSON `gorm:"column:tags" json:"tags"`
	Status      string         `gorm:"column:status;type:varchar(16);not null;default:draft;index" json:"status"`
	AuthorID    string         `gorm:"column:author_id;type:varchar(64)" json:"author_id"`
	PublishedAt *time.Time     `gorm:"column:published_at;index" json:"published_at"`
	CreatedAt   time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

func (b *ContentBase) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = snowflake.GenStringID()
	}
	return nil
}

func (b *ContentBase) Base() *ContentBase { return b }

// Content 三类内容的公共约束
type Content interface {
	Tutorial | UseCase | Blog
}

type Tutorial struct {
	ContentBase
	Difficulty      string `gorm:"column:difficulty;type:varchar(16)" json:"difficulty"` // beginner / intermediate / advanced
	DurationMinutes int    `gorm:"column:duration_minutes" json:"duration_minutes"`
}

func (Tutorial) TableName() string { return "tutorials" }

type UseCase struct {
	ContentBase
	Industry     string         `gorm:"column:industry;type:varchar(64)" json:"industry"`
	WorkflowJSON datatypes.JSON `gorm:"column:workflow_json" json:"workflow_json"`
}

func (UseCase) TableName() string { return "use_cases" }

type Blog struct {
	ContentBase
	Category string `gorm:"column:category;type:varchar(64)" json:"category"`
	Excerpt  string `gorm:"column:excerpt;type:text" json:"excerpt"`
}

func (Blog) TableName() string { return "blogs" }

// ResourceSummary 活动流里附带的内容摘要
type ResourceSummary struct {
	ID      string `gorm:"column:id" json:"id"`
	Title   string `gorm:"column:title" json:"title"`
	TitleZh string `gorm:"column:title_zh" json:"titleZh"`
}

// ActivityRow UNION ALL 查询的结果行
type ActivityRow struct {
	Action       string    `gorm:"column:action"`
	ResourceType string    `gorm:"column:resource_type"`
	ResourceID   string    `gorm:"column:resource_id"`
	Platform     string    `gorm:"column:platform"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}
