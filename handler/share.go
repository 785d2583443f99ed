package handler

import (
	"FlowHub/middleware"
	"FlowHub/pkg/context"
	"FlowHub/pkg/jwt"
	"FlowHub/pkg/response"
	"FlowHub/pkg/utils"
	"FlowHub/service"
	"FlowHub/types"

	"github.com/gin-gonic/gin"
)

type Share struct {
	ShareService service.IShareService
	ViewService  service.IViewService
	Verifier     *jwt.Verifier
}

func (h *Share) RegisterRouter(r gin.IRouter) {
	optional := middleware.OptionalAuth(h.Verifier)
	r.POST("/share", optional, context.Wrap(h.Share))
	r.POST("/views", optional, context.Wrap(h.RecordView))
	r.GET("/views", context.Wrap(h.ViewCount))
}

// Share 匿名用户也可以分享
func (h *Share) Share(c *gin.Context) error {
	var req types.ShareReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	err := h.ShareService.Record(c.Request.Context(), &req, context.GetOptionalUserID(c), utils.ClientIP(c))
	if err != nil {
		return err
	}
	response.Success(c, types.SuccessResp{Success: true})
	return nil
}

func (h *Share) RecordView(c *gin.Context) error {
	req, err := bindResource(c)
	if err != nil {
		return err
	}
	key, err := service.ValidateResource(req.ResourceType, req.ResourceID)
	if err != nil {
		return err
	}
	err = h.ViewService.Record(c.Request.Context(), key, context.GetOptionalUserID(c), utils.ClientIP(c))
	if err != nil {
		return err
	}
	response.Success(c, types.SuccessResp{Success: true})
	return nil
}

func (h *Share) ViewCount(c *gin.Context) error {
	key, err := service.ValidateResource(c.Query("resourceType"), c.Query("resourceId"))
	if err != nil {
		return err
	}
	count, err := h.ViewService.Count(c.Request.Context(), key)
	if err != nil {
		return err
	}
	response.Success(c, types.CountResp{Count: count})
	return nil
}
