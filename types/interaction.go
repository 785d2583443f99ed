package types

import "time"

// ResourceReq 互动接口的资源标识
type ResourceReq struct {
	ResourceType string `json:"resourceType" form:"resourceType"`
	ResourceID   string `json:"resourceId" form:"resourceId"`
}

type ToggleResp struct {
	Success bool   `json:"success"`
	Action  string `json:"action"`
}

type LikeStatusResp struct {
	Count   int64 `json:"count"`
	IsLiked bool  `json:"isLiked"`
}

type FavoriteStatusResp struct {
	Count       int64 `json:"count"`
	IsFavorited bool  `json:"isFavorited"`
}

type ShareReq struct {
	ResourceReq
	Platform string `json:"platform"`
}

type SuccessResp struct {
	Success bool `json:"success"`
}

type CountResp struct {
	Count int64 `json:"count"`
}

// InteractionEvent 投递到消息队列的互动事件
type InteractionEvent struct {
	Action       string    `json:"action"` // like / unlike / favorite / unfavorite / share / view
	UserID       string    `json:"userId,omitempty"`
	ResourceType string    `json:"resourceType"`
	ResourceID   string    `json:"resourceId"`
	Platform     string    `json:"platform,omitempty"`
	OccurredAt   time.Time `json:"occurredAt"`
}
