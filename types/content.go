package types

import "encoding/json"

// 内容列表分页
const (
	DefaultContentLimit = 12
	MaxContentLimit     = 50
	HomeSectionSize     = 6
	SearchLimit         = 20
)

type ContentListQuery struct {
	Tag   string `form:"tag"`
	Page  int    `form:"page"`
	Limit int    `form:"limit"`
}

type ContentListResp struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// ContentReq 后台创建/更新内容，按资源类型使用对应的扩展字段
type ContentReq struct {
	Slug      string   `json:"slug" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	TitleZh   string   `json:"titleZh"`
	Summary   string   `json:"summary"`
	SummaryZh string   `json:"summaryZh"`
	Body      string   `json:"body"`
	BodyZh    string   `json:"bodyZh"`
	CoverURL  string   `json:"coverUrl"`
	Tags      []string `json:"tags"`

	Difficulty      string `json:"difficulty"`
	DurationMinutes int    `json:"durationMinutes"`

	Industry     string          `json:"industry"`
	WorkflowJSON json.RawMessage `json:"workflowJson"`

	Category string `json:"category"`
	Excerpt  string `json:"excerpt"`
}

type SearchResp struct {
	Tutorials any `json:"tutorials"`
	UseCases  any `json:"useCases"`
	Blogs     any `json:"blogs"`
}

type HomeResp struct {
	Tutorials any `json:"tutorials"`
	UseCases  any `json:"useCases"`
	Blogs     any `json:"blogs"`
}

type UploadCoverResp struct {
	URL    string `json:"url"`
	Key    string `json:"key"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type StatsResp struct {
	Users     int64 `json:"users"`
	Tutorials int64 `json:"tutorials"`
	UseCases  int64 `json:"useCases"`
	Blogs     int64 `json:"blogs"`
	Likes     int64 `json:"likes"`
	Favorites int64 `json:"favorites"`
	Shares    int64 `json:"shares"`
	Views     int64 `json:"views"`
}
