package models

import "time"

// Like 点赞记录
// 对应表 likes
// 唯一键: user_id + resource_type + resource_id，行存在即已点赞
type Like struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:uk_like_user_resource,priority:1" json:"user_id"`
	ResourceType string    `gorm:"column:resource_type;type:varchar(16);not null;uniqueIndex:uk_like_user_resource,priority:2;index:idx_like_resource,priority:1" json:"resource_type"`
	ResourceID   string    `gorm:"column:resource_id;type:varchar(64);not null;uniqueIndex:uk_like_user_resource,priority:3;index:idx_like_resource,priority:2" json:"resource_id"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Like) TableName() string { return "likes" }

// Favorite 收藏记录，结构与 Like 相同
type Favorite struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       string    `gorm:"column:user_id;type:varchar(64);not null;uniqueIndex:uk_favorite_user_resource,priority:1" json:"user_id"`
	ResourceType string    `gorm:"column:resource_type;type:varchar(16);not null;uniqueIndex:uk_favorite_user_resource,priority:2;index:idx_favorite_resource,priority:1" json:"resource_type"`
	ResourceID   string    `gorm:"column:resource_id;type:varchar(64);not null;uniqueIndex:uk_favorite_user_resource,priority:3;index:idx_favorite_resource,priority:2" json:"resource_id"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (Favorite) TableName() string { return "favorites" }

// ShareRecord 分享日志，只追加
type ShareRecord struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       *string   `gorm:"column:user_id;type:varchar(64);index" json:"user_id"`
	ResourceType string    `gorm:"column:resource_type;type:varchar(16);not null;index:idx_share_resource,priority:1" json:"resource_type"`
	ResourceID   string    `gorm:"column:resource_id;type:varchar(64);not null;index:idx_share_resource,priority:2" json:"resource_id"`
	Platform     string    `gorm:"column:platform;type:varchar(16);not null" json:"platform"`
	IPAddress    string    `gorm:"column:ip_address;type:varchar(64)" json:"ip_address"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (ShareRecord) TableName() string { return "share_records" }

// ViewRecord 浏览日志，只追加，IP 只保存哈希
type ViewRecord struct {
	ID           uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       *string   `gorm:"column:user_id;type:varchar(64);index" json:"user_id"`
	ResourceType string    `gorm:"column:resource_type;type:varchar(16);not null;index:idx_view_resource,priority:1" json:"resource_type"`
	ResourceID   string    `gorm:"column:resource_id;type:varchar(64);not null;index:idx_view_resource,priority:2" json:"resource_id"`
	IPHash       string    `gorm:"column:ip_hash;type:varchar(32)" json:"ip_hash"`
	CreatedAt    time.Time `gorm:"column:created_at;index" json:"created_at"`
}

func (ViewRecord) TableName() string { return "view_records" }
