package models

import "time"

const ProviderExternal = "external"

// User 本地用户，由身份提供方 webhook 同步
type User struct {
	ID         uint64    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Email      string    `gorm:"column:email;type:varchar(255);not null;index" json:"email"`
	FullName   string    `gorm:"column:full_name;type:varchar(128)" json:"full_name"`
	AvatarURL  string    `gorm:"column:avatar_url;type:varchar(512)" json:"avatar_url"`
	Provider   string    `gorm:"column:provider;type:varchar(32);not null;uniqueIndex:uk_provider_id,priority:1" json:"provider"`
	ProviderID string    `gorm:"column:provider_id;type:varchar(64);not null;uniqueIndex:uk_provider_id,priority:2" json:"provider_id"`
	IsAdmin    bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
