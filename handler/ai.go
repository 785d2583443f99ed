package handler

import (
	"FlowHub/middleware"
	"FlowHub/pkg/context"
	"FlowHub/pkg/jwt"
	"FlowHub/pkg/response"
	"FlowHub/service"
	"FlowHub/types"

	"github.com/gin-gonic/gin"
)

type AI struct {
	AIService        service.IAIService
	TranslateService service.ITranslateService
	Verifier         *jwt.Verifier
}

func (h *AI) RegisterRouter(r gin.IRouter) {
	r.POST("/ai/analyze", middleware.Auth(h.Verifier), context.Wrap(h.Analyze))
	r.POST("/translate", context.Wrap(h.Translate))
}

func (h *AI) Analyze(c *gin.Context) error {
	var req types.AnalyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	data, err := h.AIService.Analyze(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, types.AnalyzeResp{Success: true, Data: data})
	return nil
}

// Translate 翻译失败时原文返回，success 仍为 true
func (h *AI) Translate(c *gin.Context) error {
	var req types.TranslateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	out := h.TranslateService.Translate(c.Request.Context(), req.Text, req.TargetLanguage)
	response.Success(c, types.TranslateResp{Success: true, TranslatedText: out})
	return nil
}
