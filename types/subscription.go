package types

import "time"

type PlanResp struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	NameZh       string `json:"nameZh"`
	MaxUseCases  int    `json:"maxUseCases"`
	MaxTutorials int    `json:"maxTutorials"`
	MaxBlogs     int    `json:"maxBlogs"`
}

type SubscriptionInfo struct {
	ID                 uint64     `json:"id"`
	PlanID             string     `json:"planId"`
	Status             string     `json:"status"`
	CurrentPeriodStart *time.Time `json:"currentPeriodStart"`
	CurrentPeriodEnd   *time.Time `json:"currentPeriodEnd"`
	CancelAtPeriodEnd  bool       `json:"cancelAtPeriodEnd"`
	CreatedAt          time.Time  `json:"createdAt"`
}

type SubscriptionResp struct {
	Subscription *SubscriptionInfo `json:"subscription"`
	Plan         *PlanResp         `json:"plan"`
}

// QuotaItem limit 为 -1 表示不限，此时 remaining 也为 -1
type QuotaItem struct {
	Used      int64 `json:"used"`
	Limit     int   `json:"limit"`
	Remaining int64 `json:"remaining"`
}

type QuotaResp struct {
	Plan      *PlanResp `json:"plan"`
	UseCases  QuotaItem `json:"useCases"`
	Tutorials QuotaItem `json:"tutorials"`
	Blogs     QuotaItem `json:"blogs"`
}
