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

type Interaction struct {
	InteractionService service.IInteractionService
	Verifier           *jwt.Verifier
}

func (h *Interaction) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth(h.Verifier)
	r.POST("/likes", authorize, context.Wrap(h.ToggleLike))
	r.GET("/likes", context.Wrap(h.LikeStatus))
	r.POST("/favorites", authorize, context.Wrap(h.ToggleFavorite))
	r.GET("/favorites", context.Wrap(h.FavoriteStatus))
}

func bindResource(c *gin.Context) (*types.ResourceReq, error) {
	var req types.ResourceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, response.BindError(err)
	}
	return &req, nil
}

func (h *Interaction) ToggleLike(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	req, err := bindResource(c)
	if err != nil {
		return err
	}
	key, err := service.ValidateResource(req.ResourceType, req.ResourceID)
	if err != nil {
		return err
	}
	action, err := h.InteractionService.ToggleLike(c.Request.Context(), uid, key)
	if err != nil {
		return err
	}
	response.Success(c, types.ToggleResp{Success: true, Action: action})
	return nil
}

// LikeStatus 未传 userId 时 isLiked 恒为 false
func (h *Interaction) LikeStatus(c *gin.Context) error {
	key, err := service.ValidateResource(c.Query("resourceType"), c.Query("resourceId"))
	if err != nil {
		return err
	}
	resp, err := h.InteractionService.LikeStatus(c.Request.Context(), key, c.Query("userId"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Interaction) ToggleFavorite(c *gin.Context) error {
	uid, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	req, err := bindResource(c)
	if err != nil {
		return err
	}
	key, err := service.ValidateResource(req.ResourceType, req.ResourceID)
	if err != nil {
		return err
	}
	action, err := h.InteractionService.ToggleFavorite(c.Request.Context(), uid, key)
	if err != nil {
		return err
	}
	response.Success(c, types.ToggleResp{Success: true, Action: action})
	return nil
}

func (h *Interaction) FavoriteStatus(c *gin.Context) error {
	key, err := service.ValidateResource(c.Query("resourceType"), c.Query("resourceId"))
	if err != nil {
		return err
	}
	resp, err := h.InteractionService.FavoriteStatus(c.Request.Context(), key, c.Query("userId"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
