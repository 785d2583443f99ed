package types

import (
	"FlowHub/models"
	"math"
	"time"
)

// 活动分页默认值
const (
	DefaultPage          = 1
	DefaultActivityLimit = 20
	MaxActivityLimit     = 100
	// MaxActivityPage 保证 (page-1)*limit 不溢出 int32 偏移
	MaxActivityPage      = math.MaxInt32 / MaxActivityLimit
)

// 活动查询类型
const (
	ActivityTypeAll       = "all"
	ActivityTypeLikes     = "likes"
	ActivityTypeFavorites = "favorites"
	ActivityTypeShares    = "shares"
)

type ActivityQuery struct {
	Type  string `form:"type"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type ActivityItem struct {
	Action       string                  `json:"action"`
	ResourceType string                  `json:"resourceType"`
	ResourceID   string                  `json:"resourceId"`
	Platform     string                  `json:"platform,omitempty"`
	CreatedAt    time.Time               `json:"createdAt"`
	Resource     *models.ResourceSummary `json:"resource"`
}

type Pagination struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	HasMore bool `json:"hasMore"`
}

type ActivityListResp struct {
	Activities []*ActivityItem `json:"activities"`
	Pagination Pagination      `json:"pagination"`
}
