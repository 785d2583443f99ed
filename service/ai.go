package service

import (
	"FlowHub/pkg/llm"
	"FlowHub/pkg/response"
	"FlowHub/pkg/utils"
	"FlowHub/types"
	"context"
	"errors"
	"fmt"
	"net/http"
)

// 单次分析输入上限（字符）
const maxAnalyzeInput = 12000

// Completer 对话补全后端
type Completer interface {
	Complete(ctx context.Context, model, system, prompt string) (string, error)
}

var _ IAIService = (*AIService)(nil)

type IAIService interface {
	Analyze(ctx context.Context, req *types.AnalyzeReq) (any, error)
}

type AIService struct {
	LLM Completer
}

const (
	workflowSystem = "你是工作流自动化专家。阅读用户给出的工作流说明和 JSON 定义，" +
		"用 Markdown 输出：1. 工作流用途 2. 各节点作用 3. 可改进之处。"
	summarySystem = "Summarize the following content in the same language it is written in, within 120 words."
	tagsSystem    = "为下面的内容生成 3 到 6 个标签，每个标签以 # 开头，用空格分隔，只输出标签。"
)

func (s *AIService) Analyze(ctx context.Context, req *types.AnalyzeReq) (any, error) {
	content := utils.Excerpt(req.Content, maxAnalyzeInput)

	var (
		out string
		err error
	)
	switch req.Type {
	case types.AnalyzeWorkflow:
		prompt := content
		if len(req.WorkflowJSON) > 0 {
			prompt = fmt.Sprintf("%s\n\n```json\n%s\n```", content, string(req.WorkflowJSON))
		}
		out, err = s.LLM.Complete(ctx, req.Model, workflowSystem, prompt)
		if err == nil {
			return map[string]string{"analysis": out}, nil
		}
	case types.AnalyzeSummary:
		out, err = s.LLM.Complete(ctx, req.Model, summarySystem, content)
		if err == nil {
			return map[string]string{"summary": out}, nil
		}
	case types.AnalyzeTags:
		out, err = s.LLM.Complete(ctx, req.Model, tagsSystem, content)
		if err == nil {
			return map[string][]string{"tags": llm.ParseTags(out)}, nil
		}
	default:
		return nil, response.InvalidParameter("Invalid analyze type")
	}

	if errors.Is(err, llm.ErrNotConfigured) {
		return nil, response.NewError(http.StatusInternalServerError, "AI service not configured")
	}
	return nil, err
}
