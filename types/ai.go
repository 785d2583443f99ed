package types

import "encoding/json"

// 分析类型
const (
	AnalyzeWorkflow = "workflow"
	AnalyzeSummary  = "summary"
	AnalyzeTags     = "tags"
)

type AnalyzeReq struct {
	Type         string          `json:"type" binding:"required,oneof=workflow summary tags"`
	Content      string          `json:"content" binding:"required"`
	WorkflowJSON json.RawMessage `json:"workflowJson"`
	Model        string          `json:"model"`
}

type AnalyzeResp struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type TranslateReq struct {
	Text           string `json:"text" binding:"required"`
	TargetLanguage string `json:"targetLanguage"`
}

type TranslateResp struct {
	Success        bool   `json:"success"`
	TranslatedText string `json:"translatedText"`
}
