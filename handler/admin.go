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

type Admin struct {
	AdminService   service.IAdminService
	ContentService service.IContentService
	OssService     service.IOssService
	Verifier       *jwt.Verifier
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	g := r.Group("/admin", middleware.Auth(h.Verifier), middleware.RequireAdmin(h.AdminService))
	g.GET("/stats", context.Wrap(h.Stats))
	g.POST("/uploads/cover", context.Wrap(h.UploadCover))
	g.DELETE("/uploads/cover", context.Wrap(h.DeleteCover))

	content := g.Group("/content/:kind")
	content.GET("", context.Wrap(h.List))
	content.POST("", context.Wrap(h.Create))
	content.GET("/:id", context.Wrap(h.Get))
	content.PUT("/:id", context.Wrap(h.Update))
	content.POST("/:id/publish", context.Wrap(h.Publish))
	content.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Admin) Stats(c *gin.Context) error {
	resp, err := h.AdminService.Stats(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) List(c *gin.Context) error {
	rt, err := resourceTypeOf(c.Param("kind"))
	if err != nil {
		return err
	}
	var q types.ContentListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidParameter("Invalid pagination parameters")
	}
	resp, err := h.ContentService.AdminList(c.Request.Context(), rt, &q)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) Get(c *gin.Context) error {
	rt, err := resourceTypeOf(c.Param("kind"))
	if err != nil {
		return err
	}
	item, err := h.ContentService.Get(c.Request.Context(), rt, c.Param("id"))
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Admin) Create(c *gin.Context) error {
	rt, err := resourceTypeOf(c.Param("kind"))
	if err != nil {
		return err
	}
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	item, err := h.ContentService.Create(c.Request.Context(), rt, uid, &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Admin) Update(c *gin.Context) error {
	rt, err := resourceTypeOf(c.Param("kind"))
	if err != nil {
		return err
	}
	var req types.ContentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.BindError(err)
	}
	item, err := h.ContentService.Update(c.Request.Context(), rt, c.Param("id"), &req)
	if err != nil {
		return err
	}
	response.Success(c, item)
	return nil
}

func (h *Admin) Publish(c *gin.Context) error {
	rt, err := resourceTypeOf(c.Param("kind"))
	if err != nil {
		return err
	}
	if err := h.ContentService.Publish(c.Request.Context(), rt, c.Param("id")); err != nil {
		return err
	}
	response.Success(c, types.SuccessResp{Success: true})
	return nil
}

func (h *Admin) Delete(c *gin.Context) error {
	rt, err := resourceTypeOf(c.Param("kind"))
	if err != nil {
		return err
	}
	if err := h.ContentService.Delete(c.Request.Context(), rt, c.Param("id")); err != nil {
		return err
	}
	response.Success(c, types.SuccessResp{Success: true})
	return nil
}

func (h *Admin) UploadCover(c *gin.Context) error {
	header, err := c.FormFile("image")
	if err != nil {
		return response.ErrMissingParameter
	}
	resp, err := h.OssService.UploadCover(c.Request.Context(), header)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) DeleteCover(c *gin.Context) error {
	if err := h.OssService.Delete(c.Request.Context(), c.Query("key")); err != nil {
		return err
	}
	response.Success(c, types.SuccessResp{Success: true})
	return nil
}
