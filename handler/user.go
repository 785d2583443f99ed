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

type User struct {
	ActivityService     service.IActivityService
	SubscriptionService service.ISubscriptionService
	Verifier            *jwt.Verifier
}

func (h *User) RegisterRouter(r gin.IRouter) {
	g := r.Group("/user", middleware.Auth(h.Verifier))
	g.GET("/activities", context.Wrap(h.Activities))
	g.GET("/subscription", context.Wrap(h.Subscription))
	g.GET("/quota", context.Wrap(h.Quota))
}

func (h *User) Activities(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var q types.ActivityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return response.InvalidParameter("Invalid pagination parameters")
	}
	resp, err := h.ActivityService.List(c.Request.Context(), uid, &q)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) Subscription(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.SubscriptionService.Get(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) Quota(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.SubscriptionService.Quota(c.Request.Context(), uid)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
