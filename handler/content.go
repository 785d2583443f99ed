package handler

import (
	"FlowHub/models"
	"FlowHub/pkg/context"
	"FlowHub/pkg/response"
	"FlowHub/service"
	"FlowHub/types"

	"github.com/gin-gonic/gin"
)

// 路由段与资源类型的对应
var kindPaths = map[string]string{
	"tutorials": models.ResourceTutorial,
	"use-cases": models.ResourceUseCase,
	"blogs":     models.ResourceBlog,
}

func resourceTypeOf(kind string) (string, error) {
	rt, ok := kindPaths[kind]
	if !ok {
		return "", response.ErrNotFound
	}
	return rt, nil
}

type Content struct {
	ContentService service.IContentService
	PlanService    service.IPlanService
}

func (h *Content) RegisterRouter(r gin.IRouter) {
	for kind := range kindPaths {
		r.GET("/"+kind, context.Wrap(h.list(kind)))
		r.GET("/"+kind+"/:slug", context.Wrap(h.detail(kind)))
	}
	r.GET("/search", context.Wrap(h.Search))
	r.GET("/home", context.Wrap(h.Home))
	r.GET("/plans", context.Wrap(h.Plans))
}

func (h *Content) list(kind string) func(c *gin.Context) error {
	rt, _ := resourceTypeOf(kind)
	return func(c *gin.Context) error {
		var q types.ContentListQuery
		if err := c.ShouldBindQuery(&q); err != nil {
			return response.InvalidParameter("Invalid pagination parameters")
		}
		resp, err := h.ContentService.List(c.Request.Context(), rt, &q)
		if err != nil {
			return err
		}
		response.Success(c, resp)
		return nil
	}
}

func (h *Content) detail(kind string) func(c *gin.Context) error {
	rt, _ := resourceTypeOf(kind)
	return func(c *gin.Context) error {
		item, err := h.ContentService.GetBySlug(c.Request.Context(), rt, c.Param("slug"))
		if err != nil {
			return err
		}
		response.Success(c, item)
		return nil
	}
}

func (h *Content) Search(c *gin.Context) error {
	resp, err := h.ContentService.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Content) Home(c *gin.Context) error {
	resp, err := h.ContentService.Home(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Content) Plans(c *gin.Context) error {
	plans, err := h.PlanService.List(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"plans": plans})
	return nil
}
